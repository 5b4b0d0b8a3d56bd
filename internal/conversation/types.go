package conversation

import "time"

// Role tags a transcript message with its author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// SystemGreeting opens every new conversation.
const SystemGreeting = "You are a helpful Todo Assistant."

// Message is one entry in a conversation transcript.
type Message struct {
	ID        string    `json:"id"` // ULID, sortable within a transcript
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is an append-only transcript keyed by its ID. The pipeline
// writes to it but never reads it back for decision-making.
type Conversation struct {
	ID        string    `json:"conversation_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
