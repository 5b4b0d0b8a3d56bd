package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/chat/parser"
	"todo-chat-api/internal/chat/resolver"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/internal/model"
	"todo-chat-api/internal/task/repository"
)

// Process handles one utterance end to end: parse, dispatch, format, and
// record both turns in the conversation transcript. Store failures surface
// as apologetic reply text, never as a returned error.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.Input) (chat.Output, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.Output{}, chat.ErrEmptyMessage
	}

	convID := input.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}

	uc.convs.Append(convID, conversation.RoleUser, input.Message)

	cmd := uc.parser.Parse(input.Message)
	uc.l.Infof(ctx, "chat: user=%s conversation=%s action=%s", sc.UserID, convID, cmd.Action)

	reply := uc.dispatch(ctx, cmd, input.Tasks)

	uc.convs.Append(convID, conversation.RoleAssistant, reply)

	return chat.Output{ConversationID: convID, Reply: reply}, nil
}

// dispatch performs the single store call implied by the action and renders
// the reply. The snapshot, when non-nil, stands in for a store fetch.
func (uc *implUseCase) dispatch(ctx context.Context, cmd parser.Command, snapshot []model.Task) string {
	switch cmd.Action {
	case parser.ActionList:
		tasks, err := uc.tasksFor(ctx, snapshot)
		if err != nil {
			return fmt.Sprintf("Sorry, I couldn't fetch your tasks: %v", err)
		}
		return formatList(tasks)

	case parser.ActionCreate:
		return uc.handleCreate(ctx, cmd)

	case parser.ActionComplete:
		return uc.handleComplete(ctx, cmd, snapshot)

	case parser.ActionDelete:
		return uc.handleDelete(ctx, cmd, snapshot)

	case parser.ActionUpdate:
		return updateComingSoon

	case parser.ActionCount:
		tasks, err := uc.tasksFor(ctx, snapshot)
		if err != nil {
			return fmt.Sprintf("Sorry, I couldn't count your tasks: %v", err)
		}
		return formatCount(tasks)

	case parser.ActionHelp:
		return helpText
	}

	return unknownText
}

func (uc *implUseCase) handleCreate(ctx context.Context, cmd parser.Command) string {
	if cmd.TaskTitle == "" || cmd.TaskTitle == parser.DefaultTitle {
		return createClarification
	}

	description := synthesizeDescription(cmd.TaskTitle, cmd.Description)

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       cmd.TaskTitle,
		Description: description,
		Priority:    cmd.Priority,
		DueDate:     cmd.DueDate,
	})
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't create the task: %v", err)
	}

	return formatCreated(created.Title, description, cmd.Priority, cmd.DueDate)
}

func (uc *implUseCase) handleComplete(ctx context.Context, cmd parser.Command, snapshot []model.Task) string {
	tasks, err := uc.tasksFor(ctx, snapshot)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't complete the task: %v", err)
	}

	pending := filterByStatus(tasks, model.StatusPending)
	if len(pending) == 0 {
		return "You don't have any pending tasks to complete."
	}
	if cmd.TaskTitle == "" {
		return completeClarification
	}

	task, ok := resolver.Resolve(cmd.TaskTitle, pending)
	if !ok {
		return fmt.Sprintf("I couldn't find a pending task matching %q. Here are your pending tasks:\n%s",
			cmd.TaskTitle, formatCandidates(pending))
	}

	completed, err := uc.repo.CompleteTask(ctx, task.ID)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't complete the task: %v", err)
	}
	return fmt.Sprintf("✅ Completed task: %q", completed.Title)
}

func (uc *implUseCase) handleDelete(ctx context.Context, cmd parser.Command, snapshot []model.Task) string {
	tasks, err := uc.tasksFor(ctx, snapshot)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't delete the task: %v", err)
	}

	if len(tasks) == 0 {
		return "You don't have any tasks to delete."
	}
	if cmd.TaskTitle == "" {
		return deleteClarification
	}

	task, ok := resolver.Resolve(cmd.TaskTitle, tasks)
	if !ok {
		return fmt.Sprintf("I couldn't find a task matching %q. Here are your tasks:\n%s",
			cmd.TaskTitle, formatCandidates(tasks))
	}

	if err := uc.repo.DeleteTask(ctx, task.ID); err != nil {
		return fmt.Sprintf("Sorry, I couldn't delete the task: %v", err)
	}
	return fmt.Sprintf("✅ Deleted task: %q", task.Title)
}

// tasksFor returns the caller's snapshot when present, or fetches from the
// store — the only read the pipeline performs.
func (uc *implUseCase) tasksFor(ctx context.Context, snapshot []model.Task) ([]model.Task, error) {
	if snapshot != nil {
		return snapshot, nil
	}
	return uc.repo.ListTasks(ctx)
}

func filterByStatus(tasks []model.Task, status model.Status) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
