// Package config reads backend settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is the chat-tuned model used when HF_MODEL is unset.
	DefaultModel = "HuggingFaceH4/zephyr-7b-beta"
	// DefaultAPIBase is the Hugging Face Inference API host.
	DefaultAPIBase = "https://api-inference.huggingface.co"

	defaultPort    = "8080"
	defaultTimeout = 30 * time.Second
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port     string
	APIToken string
	Model    string
	APIBase  string
	Timeout  time.Duration
}

// Load reads configuration from the environment, loading .env first if
// one exists. Missing values fall back to defaults; only APIToken may
// end up empty, in which case the server runs with the mock provider.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     envOr("PORT", defaultPort),
		APIToken: os.Getenv("HF_API_TOKEN"),
		Model:    envOr("HF_MODEL", DefaultModel),
		APIBase:  envOr("HF_API_BASE", DefaultAPIBase),
		Timeout:  envSeconds("HF_TIMEOUT_SECONDS", defaultTimeout),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
