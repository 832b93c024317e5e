// Package provider talks to the external text-generation endpoint.
package provider

import (
	"context"
	"fmt"

	"github.com/insightedge/insightedge-backend/internal"
)

// Generator produces text for a prompt. Generate returns the generated
// text, or an error that is either transport-level or an *APIError for a
// non-2xx response. Output is stochastic; callers must not assume the
// same prompt yields the same text.
type Generator interface {
	Model() string
	Generate(ctx context.Context, req internal.PromptRequest) (string, error)
}

// APIError is a non-2xx response from the inference endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("inference API %d: %s", e.StatusCode, e.Message)
}

// Mock answers without any external API, for offline development.
type Mock struct{}

func (Mock) Model() string { return "mock-analyst" }

func (Mock) Generate(_ context.Context, req internal.PromptRequest) (string, error) {
	return "(mock) Received prompt: \"" + req.Text + "\"", nil
}
