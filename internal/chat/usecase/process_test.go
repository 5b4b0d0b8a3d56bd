package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/chat/parser"
	"todo-chat-api/internal/chat/usecase"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/internal/model"
	"todo-chat-api/pkg/dates"
)

func newTestUseCase(t *testing.T, repo *mockTaskRepo) (chat.UseCase, conversation.Store) {
	t.Helper()
	dp, err := dates.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	convs := conversation.NewStore(16, time.Minute)
	return usecase.New(&mockLogger{}, parser.New(dp), repo, convs), convs
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Buy groceries", Description: "milk and eggs", Priority: model.PriorityHigh, Status: model.StatusPending, DueDate: "2026-09-01"},
		{ID: "2", Title: "Call mom", Priority: model.PriorityLow, Status: model.StatusPending},
		{ID: "3", Title: "File taxes", Status: model.StatusCompleted},
	}
}

func TestProcess_EmptyMessage(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockTaskRepo{})

	_, err := uc.Process(context.Background(), model.Scope{}, chat.Input{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcess_ConversationLifecycle(t *testing.T) {
	uc, convs := newTestUseCase(t, &mockTaskRepo{})

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, chat.Input{Message: "help"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.ConversationID == "" {
		t.Fatal("expected a minted conversation id")
	}

	conv, ok := convs.Get(out.ConversationID)
	if !ok {
		t.Fatal("conversation not stored")
	}
	// system greeting, user turn, assistant turn
	if len(conv.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Role != conversation.RoleSystem {
		t.Errorf("first message role = %s, want system", conv.Messages[0].Role)
	}
	if conv.Messages[1].Role != conversation.RoleUser || conv.Messages[1].Content != "help" {
		t.Errorf("user turn not recorded: %+v", conv.Messages[1])
	}
	if conv.Messages[2].Role != conversation.RoleAssistant || conv.Messages[2].Content != out.Reply {
		t.Errorf("assistant turn not recorded: %+v", conv.Messages[2])
	}

	// a second turn reuses the same conversation
	out2, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, chat.Input{
		ConversationID: out.ConversationID,
		Message:        "how many tasks do I have?",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out2.ConversationID != out.ConversationID {
		t.Errorf("conversation id changed: %s != %s", out2.ConversationID, out.ConversationID)
	}
	conv, _ = convs.Get(out.ConversationID)
	if len(conv.Messages) != 5 {
		t.Errorf("expected 5 messages after second turn, got %d", len(conv.Messages))
	}
}

func TestProcess_List(t *testing.T) {
	t.Run("with snapshot, no store call", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Show my todos",
			Tasks:   sampleTasks(),
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if repo.listCalls != 0 {
			t.Errorf("expected no store fetch with snapshot, got %d", repo.listCalls)
		}

		want := "Here are your tasks:\n\n" +
			"1. ○ Buy groceries [high] (due: 2026-09-01)\n" +
			"2. ○ Call mom [low]\n" +
			"3. ✓ File taxes"
		if out.Reply != want {
			t.Errorf("reply mismatch:\n got: %q\nwant: %q", out.Reply, want)
		}
	})

	t.Run("without snapshot, fetches from store", func(t *testing.T) {
		repo := &mockTaskRepo{tasks: sampleTasks()}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{Message: "list my tasks"})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if repo.listCalls != 1 {
			t.Errorf("expected one store fetch, got %d", repo.listCalls)
		}
		if !strings.HasPrefix(out.Reply, "Here are your tasks:") {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("empty", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockTaskRepo{})

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{Message: "show my tasks", Tasks: []model.Task{}})
		if out.Reply != "You don't have any tasks yet. Create one to get started!" {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})
}

func TestProcess_Count(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockTaskRepo{})

	out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
		Message: "How many todos do I have?",
		Tasks:   sampleTasks(),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Reply != "You have 3 tasks total (2 pending, 1 completed)." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}

	t.Run("singular", func(t *testing.T) {
		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "count my tasks",
			Tasks:   sampleTasks()[:1],
		})
		if out.Reply != "You have 1 task total (1 pending, 0 completed)." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})
}

func TestProcess_Create(t *testing.T) {
	t.Run("full command", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Create a high priority task called Groceries due 2026-09-15",
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one create call, got %d", len(repo.created))
		}
		opt := repo.created[0]
		if opt.Title != "Groceries" {
			t.Errorf("title = %q", opt.Title)
		}
		if opt.Priority != model.PriorityHigh {
			t.Errorf("priority = %q", opt.Priority)
		}
		if opt.DueDate != "2026-09-15" {
			t.Errorf("due date = %q", opt.DueDate)
		}
		if opt.Description == "" {
			t.Error("expected a synthesized description")
		}

		if !strings.HasPrefix(out.Reply, `✅ Created task: "Groceries"`) {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
		for _, want := range []string{"\nDescription: ", "\nPriority: high", "\nDue date: 2026-09-15"} {
			if !strings.Contains(out.Reply, want) {
				t.Errorf("reply missing %q:\n%s", want, out.Reply)
			}
		}
	})

	t.Run("short title words take the generic template", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		if _, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Create a task called Do",
		}); err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one create call, got %d", len(repo.created))
		}
		want := "Task: Do. This is an important task that needs to be completed. Please review all requirements carefully, ensure everything is done properly, verify completion criteria, and check all details before marking as done."
		if got := repo.created[0].Description; got != want {
			t.Errorf("description = %q, want %q", got, want)
		}
	})

	t.Run("long description keeps its exclamation", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		if _, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Create a task called Groceries description: Buy everything we need for the entire week right now!",
		}); err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one create call, got %d", len(repo.created))
		}
		want := "Buy everything we need for the entire week right now! Please ensure this task is completed thoroughly, all requirements are met, verify completion criteria, and check all details before marking as complete."
		if got := repo.created[0].Description; got != want {
			t.Errorf("description = %q, want %q", got, want)
		}
	})

	t.Run("placeholder title asks for details", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{Message: "create a task"})
		if len(repo.created) != 0 {
			t.Fatalf("expected no create call, got %d", len(repo.created))
		}
		if out.Reply != "I'd be happy to create a task for you! Please tell me what the task should be called and provide some details about it." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("store failure becomes apology", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockTaskRepo{fail: true})

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "add a todo called Laundry",
		})
		if err != nil {
			t.Fatalf("store failure must not surface as error, got %v", err)
		}
		if !strings.HasPrefix(out.Reply, "Sorry, I couldn't create the task:") {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})
}

func TestProcess_Complete(t *testing.T) {
	t.Run("resolves against pending only", func(t *testing.T) {
		repo := &mockTaskRepo{tasks: sampleTasks()}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Complete the todo Buy groceries",
			Tasks:   sampleTasks(),
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(repo.completed) != 1 || repo.completed[0] != "1" {
			t.Fatalf("completed = %v, want [1]", repo.completed)
		}
		if out.Reply != `✅ Completed task: "Buy groceries"` {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("no pending tasks", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockTaskRepo{})

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "finish Buy groceries",
			Tasks:   []model.Task{{ID: "3", Title: "File taxes", Status: model.StatusCompleted}},
		})
		if out.Reply != "You don't have any pending tasks to complete." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("no match lists pending candidates", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "complete the task Walk dog",
			Tasks:   sampleTasks(),
		})
		if len(repo.completed) != 0 {
			t.Fatalf("expected no complete call, got %v", repo.completed)
		}
		want := "I couldn't find a pending task matching \"Walk dog\". Here are your pending tasks:\n" +
			"- Buy groceries (milk and eggs)\n" +
			"- Call mom"
		if out.Reply != want {
			t.Errorf("reply mismatch:\n got: %q\nwant: %q", out.Reply, want)
		}
	})
}

func TestProcess_Delete(t *testing.T) {
	t.Run("resolves against all tasks", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "Delete the todo File taxes",
			Tasks:   sampleTasks(),
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != "3" {
			t.Fatalf("deleted = %v, want [3]", repo.deleted)
		}
		if out.Reply != `✅ Deleted task: "File taxes"` {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("nothing to delete", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockTaskRepo{})

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "delete Buy groceries",
			Tasks:   []model.Task{},
		})
		if out.Reply != "You don't have any tasks to delete." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("no match lists tasks", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockTaskRepo{})

		out, _ := uc.Process(context.Background(), model.Scope{}, chat.Input{
			Message: "remove the task Walk dog",
			Tasks:   sampleTasks(),
		})
		if !strings.HasPrefix(out.Reply, "I couldn't find a task matching \"Walk dog\". Here are your tasks:\n") {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})
}

func TestProcess_UpdateHelpUnknown(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockTaskRepo{})

	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"update", "update the todo Buy groceries", "Update functionality is coming soon! For now, you can use the edit button in the UI."},
		{"help", "help", "I can help you manage your tasks!"},
		{"unknown", "tell me a joke", "I'm not sure what you mean."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Process(context.Background(), model.Scope{}, chat.Input{Message: tc.message})
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if !strings.HasPrefix(out.Reply, tc.want) {
				t.Errorf("reply %q does not start with %q", out.Reply, tc.want)
			}
		})
	}
}
