package repository

import (
	"context"

	"todo-chat-api/internal/model"
)

// TaskRepository is the contract with the external Task Store. The chat
// pipeline only ever talks to the store through this interface.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string) (model.Task, error)
}
