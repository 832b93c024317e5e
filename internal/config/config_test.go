package config_test

import (
	"testing"
	"time"

	"github.com/insightedge/insightedge-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HF_API_TOKEN", "HF_MODEL", "HF_API_BASE", "HF_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Model != config.DefaultModel {
		t.Errorf("model = %q, want %q", cfg.Model, config.DefaultModel)
	}
	if cfg.APIBase != config.DefaultAPIBase {
		t.Errorf("api base = %q, want %q", cfg.APIBase, config.DefaultAPIBase)
	}
	if cfg.APIToken != "" {
		t.Errorf("token = %q, want empty", cfg.APIToken)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HF_API_TOKEN", "secret")
	t.Setenv("HF_MODEL", "some/other-model")
	t.Setenv("HF_API_BASE", "https://example.test")
	t.Setenv("HF_TIMEOUT_SECONDS", "5")

	cfg := config.Load()
	if cfg.Port != "9090" || cfg.APIToken != "secret" || cfg.Model != "some/other-model" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.APIBase != "https://example.test" {
		t.Errorf("api base = %q", cfg.APIBase)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("HF_TIMEOUT_SECONDS", "not-a-number")

	if cfg := config.Load(); cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want default 30s", cfg.Timeout)
	}
}
