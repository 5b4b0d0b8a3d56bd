package usecase

import (
	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/chat/parser"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/internal/task/repository"
	pkgLog "todo-chat-api/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	parser *parser.Parser
	repo   repository.TaskRepository
	convs  conversation.Store
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	p *parser.Parser,
	repo repository.TaskRepository,
	convs conversation.Store,
) *implUseCase {
	return &implUseCase{
		l:      l,
		parser: p,
		repo:   repo,
		convs:  convs,
	}
}
