package internal

// Exchange is one user message paired with the analyst's response.
// Immutable once appended to a session's history.
type Exchange struct {
	UserMessage string `json:"user"`
	AIResponse  string `json:"ai"`
}

// PromptRequest is the outbound value object sent to the inference
// provider. Never mutated after construction.
type PromptRequest struct {
	Text         string
	MaxNewTokens int
	Temperature  float64
}

type SetUserRequest struct {
	Name string `json:"name"`
}

type SetUserResponse struct {
	User string `json:"user"`
}

type UploadResponse struct {
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

type ChatHistory struct {
	Exchanges []Exchange `json:"exchanges"`
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}
