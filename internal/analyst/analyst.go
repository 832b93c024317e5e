// Package analyst turns session context into prompts and shapes the
// generated text into displayable results.
package analyst

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insightedge/insightedge-backend/internal/provider"
	"github.com/insightedge/insightedge-backend/internal/table"
)

// NoDataMessage is the single "insight" returned when insights are
// requested without an uploaded dataset.
const NoDataMessage = "No data uploaded. Please upload a valid CSV."

// Analyst is stateless; it composes prompts, calls the generator, and
// shapes results. Session bookkeeping belongs to the caller.
type Analyst struct {
	gen provider.Generator
}

func New(gen provider.Generator) *Analyst {
	return &Analyst{gen: gen}
}

// Insights returns a ranked list of insight lines for the table. An
// absent or zero-row table yields the NoDataMessage without touching the
// provider. A provider failure is surfaced as a single formatted error
// line, keeping the return shape uniform.
func (a *Analyst) Insights(ctx context.Context, t *table.Table, userLabel string) []string {
	if t == nil || t.Rows() == 0 {
		return []string{NoDataMessage}
	}
	text, err := a.gen.Generate(ctx, insightPrompt(userLabel, t))
	if err != nil {
		return []string{errorText(err)}
	}
	return splitInsights(text)
}

// Chat answers a free-form message. Failures come back as the same
// formatted error string used by Insights; the caller records the
// exchange either way.
func (a *Analyst) Chat(ctx context.Context, userLabel, message string) string {
	text, err := a.gen.Generate(ctx, chatPrompt(userLabel, message))
	if err != nil {
		return errorText(err)
	}
	return text
}

// splitInsights is the single point of change for how generated text
// becomes a list of insight lines.
func splitInsights(text string) []string {
	return strings.Split(text, "\n")
}

// errorText renders a generation failure for display: status code and
// body for API errors, the transport message otherwise.
func errorText(err error) string {
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: %d %s", apiErr.StatusCode, apiErr.Message)
	}
	return fmt.Sprintf("Error: %v", err)
}
