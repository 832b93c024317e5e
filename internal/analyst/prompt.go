package analyst

import (
	"fmt"
	"strings"

	"github.com/insightedge/insightedge-backend/internal"
	"github.com/insightedge/insightedge-backend/internal/table"
)

// Fixed generation parameters for both intents.
const (
	maxNewTokens = 256
	temperature  = 0.7
)

// insightPrompt embeds the user label, row count, and the ordered
// column-name list into the ranked-insights template. Callers must not
// reach here with a nil or empty table; that case short-circuits before
// any prompt is built.
func insightPrompt(userLabel string, t *table.Table) internal.PromptRequest {
	text := fmt.Sprintf(
		"User %s uploaded dataset with %d rows and columns [%s].\n"+
			"Generate a ranked list of three business insights and recommendations.",
		userLabel, t.Rows(), strings.Join(t.ColumnNames(), ", "),
	)
	return internal.PromptRequest{Text: text, MaxNewTokens: maxNewTokens, Temperature: temperature}
}

// chatPrompt sets the analyst persona and forwards the message verbatim.
func chatPrompt(userLabel, message string) internal.PromptRequest {
	text := fmt.Sprintf(
		"You are an AI business analyst for user %s. They say: %s\n"+
			"Provide a clear, actionable response.",
		userLabel, message,
	)
	return internal.PromptRequest{Text: text, MaxNewTokens: maxNewTokens, Temperature: temperature}
}
