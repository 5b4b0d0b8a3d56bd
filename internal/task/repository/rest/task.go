package rest

import (
	"context"

	"todo-chat-api/internal/model"
	"todo-chat-api/internal/task/repository"
	pkgLog "todo-chat-api/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Task Store repository backed by the REST client.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	apiTasks, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(apiTasks))
	for i := range apiTasks {
		tasks = append(tasks, toModelTask(&apiTasks[i]))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, err := r.client.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return toModelTask(t), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	t, err := r.client.CreateTask(ctx, createTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    string(priority),
		DueDate:     opt.DueDate,
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to create task %q: %v", opt.Title, err)
		return model.Task{}, err
	}
	return toModelTask(t), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, err := r.client.UpdateTask(ctx, id, updateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    string(opt.Priority),
		DueDate:     opt.DueDate,
		Status:      string(opt.Status),
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to update task %s: %v", id, err)
		return model.Task{}, err
	}
	return toModelTask(t), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "rest repository: failed to delete task %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	t, err := r.client.CompleteTask(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to complete task %s: %v", id, err)
		return model.Task{}, err
	}
	return toModelTask(t), nil
}

// toModelTask converts the store's wire object to the internal model.Task.
func toModelTask(t *apiTask) model.Task {
	return model.Task{
		ID:          string(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Priority:    model.Priority(t.Priority),
		Status:      model.Status(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
