package chat

import (
	"context"

	"todo-chat-api/internal/model"
)

// UseCase is the business logic interface for the chat domain: one utterance
// in, one formatted reply out.
type UseCase interface {
	// Process parses the utterance, performs the store calls the action
	// implies, and returns the reply string. Pipeline problems (unparseable
	// input, failed resolution, store errors) are rendered into the reply,
	// not returned.
	Process(ctx context.Context, sc model.Scope, input Input) (Output, error)
}
