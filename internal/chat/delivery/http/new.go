package http

import (
	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    chat.UseCase
	convs conversation.Store
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, convs conversation.Store) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		convs: convs,
	}
}
