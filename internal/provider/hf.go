package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/insightedge/insightedge-backend/internal"
)

// maxErrorBody caps how much of a non-2xx response body is kept in the
// error message.
const maxErrorBody = 2 << 10

// HF calls the Hugging Face Inference API. Single attempt per Generate,
// no retries; the configured client timeout bounds the call.
type HF struct {
	token  string
	model  string
	base   string
	client *http.Client
	log    *slog.Logger
}

// NewHF builds a client for the given model. The token is required; it
// travels only in the Authorization header, never in the request body.
func NewHF(token, model, base string, timeout time.Duration, log *slog.Logger) (*HF, error) {
	if token == "" {
		return nil, errors.New("inference API token is empty")
	}
	if log == nil {
		log = slog.Default()
	}
	return &HF{
		token:  token,
		model:  model,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
		log:    log,
	}, nil
}

func (p *HF) Model() string { return p.model }

// Generate posts the prompt and returns the generated text. The expected
// success shape is a JSON array whose first element carries a
// generated_text field; any other 2xx payload is returned as its raw
// string rendering so the caller always has something to display.
func (p *HF) Generate(ctx context.Context, req internal.PromptRequest) (string, error) {
	payload := struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			MaxNewTokens int     `json:"max_new_tokens"`
			Temperature  float64 `json:"temperature"`
		} `json:"parameters"`
	}{Inputs: req.Text}
	payload.Parameters.MaxNewTokens = req.MaxNewTokens
	payload.Parameters.Temperature = req.Temperature

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := p.base + "/models/" + p.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.log.Error("inference call failed", "model", p.model, "err", err)
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(raw)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		p.log.Error("inference call error", "status", resp.StatusCode, "body", msg)
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out []struct {
		GeneratedText *string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &out); err == nil && len(out) > 0 && out[0].GeneratedText != nil {
		return *out[0].GeneratedText, nil
	}

	// Unexpected but successful shape: hand back the payload as-is.
	return string(raw), nil
}
