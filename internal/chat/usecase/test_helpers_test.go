package usecase_test

import (
	"context"
	"errors"

	"todo-chat-api/internal/model"
	"todo-chat-api/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockTaskRepo records calls and serves canned tasks.
type mockTaskRepo struct {
	tasks []model.Task
	fail  bool

	created   []repository.CreateTaskOptions
	completed []string
	deleted   []string
	listCalls int
}

func (m *mockTaskRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	m.listCalls++
	if m.fail {
		return nil, errors.New("store unavailable")
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, errors.New("not found")
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("store unavailable")
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:          "42",
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Status:      model.StatusPending,
		DueDate:     opt.DueDate,
	}, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, errors.New("not implemented")
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	if m.fail {
		return errors.New("store unavailable")
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockTaskRepo) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("store unavailable")
	}
	m.completed = append(m.completed, id)
	for _, t := range m.tasks {
		if t.ID == id {
			t.Status = model.StatusCompleted
			return t, nil
		}
	}
	return model.Task{}, errors.New("not found")
}
