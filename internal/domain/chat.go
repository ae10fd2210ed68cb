package domain

// Chat roles accepted by OpenAI-compatible completion APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the provider-agnostic chat message shape used by the handler
// and LLM integrations.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Turn is one entry of the caller-owned conversation history. Role is either
// "user" or "assistant"; the browser UI also sends "bot", which is treated as
// assistant.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IsUser reports whether the turn was authored by the student.
func (t Turn) IsUser() bool {
	return t.Role == RoleUser
}

// CompletionRequest carries everything needed for one chat completion call.
type CompletionRequest struct {
	Model            string
	Messages         []ChatMessage
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Completion is the useful subset of a chat completion response.
type Completion struct {
	Content     string
	Model       string
	TotalTokens int
}
