package models

// Role tags the sender of a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleDeveloper Role = "developer"
)

// ChatTurn represents a single message in a conversation.
type ChatTurn struct {
	Role    Role   `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message             string     `json:"message"`
	ConversationHistory []ChatTurn `json:"conversation_history"`
}

// ChatResponse is the reply from the AI chat.
// Status is always StatusSuccess; it is kept for existing callers.
type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

const StatusSuccess = "success"
