package conversation_test

import (
	"testing"
	"time"

	"todo-chat-api/internal/conversation"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := conversation.NewStore(4, time.Minute)

	conv := store.GetOrCreate("c1")
	if conv.ID != "c1" {
		t.Fatalf("id = %q, want c1", conv.ID)
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("expected seeded system message, got %d messages", len(conv.Messages))
	}
	if conv.Messages[0].Role != conversation.RoleSystem || conv.Messages[0].Content != conversation.SystemGreeting {
		t.Errorf("unexpected seed message: %+v", conv.Messages[0])
	}

	again := store.GetOrCreate("c1")
	if again != conv {
		t.Error("GetOrCreate must return the existing conversation")
	}
}

func TestStore_Append(t *testing.T) {
	store := conversation.NewStore(4, time.Minute)

	store.Append("c1", conversation.RoleUser, "show my tasks")
	store.Append("c1", conversation.RoleAssistant, "Here are your tasks:")

	conv, ok := store.Get("c1")
	if !ok {
		t.Fatal("conversation missing")
	}
	if len(conv.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(conv.Messages))
	}
	if conv.Messages[1].Content != "show my tasks" || conv.Messages[1].Role != conversation.RoleUser {
		t.Errorf("unexpected user message: %+v", conv.Messages[1])
	}
	if conv.Messages[1].ID == "" || conv.Messages[1].ID == conv.Messages[2].ID {
		t.Error("message ids must be unique and non-empty")
	}
	if conv.UpdatedAt.Before(conv.CreatedAt) {
		t.Error("UpdatedAt must not precede CreatedAt")
	}
}

func TestStore_Delete(t *testing.T) {
	store := conversation.NewStore(4, time.Minute)

	store.GetOrCreate("c1")
	if !store.Delete("c1") {
		t.Error("Delete should report removal of an existing conversation")
	}
	if _, ok := store.Get("c1"); ok {
		t.Error("conversation should be gone after delete")
	}
	if store.Delete("c1") {
		t.Error("Delete of a missing conversation should report false")
	}
}

func TestStore_Eviction(t *testing.T) {
	store := conversation.NewStore(2, time.Minute)

	store.GetOrCreate("c1")
	store.GetOrCreate("c2")
	store.GetOrCreate("c3")

	if _, ok := store.Get("c1"); ok {
		t.Error("oldest conversation should be evicted at capacity")
	}
	if _, ok := store.Get("c3"); !ok {
		t.Error("newest conversation should survive")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	store := conversation.NewStore(4, 20*time.Millisecond)

	store.GetOrCreate("c1")
	time.Sleep(50 * time.Millisecond)

	if _, ok := store.Get("c1"); ok {
		t.Error("conversation should expire after the ttl")
	}
}
