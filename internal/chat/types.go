package chat

import "todo-chat-api/internal/model"

// Input is one chat turn from the user.
type Input struct {
	ConversationID string // empty means start a new conversation
	Message        string // raw utterance

	// Tasks is an optional snapshot of the caller's current task list, used
	// for resolution without an extra store round trip. Nil means the use
	// case fetches from the store itself.
	Tasks []model.Task
}

// Output is the assistant's turn.
type Output struct {
	ConversationID string
	Reply          string
}
