package repository

import "todo-chat-api/internal/model"

// CreateTaskOptions carries the fields for a new task. The store defaults
// priority to medium when empty.
type CreateTaskOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string // YYYY-MM-DD
}

// UpdateTaskOptions carries a partial update; empty fields are left
// untouched by the store.
type UpdateTaskOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string
	Status      model.Status
}
