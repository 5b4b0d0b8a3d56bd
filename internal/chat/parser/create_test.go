package parser_test

import (
	"testing"

	"todo-chat-api/internal/chat/parser"
)

func TestParse_CreateTitle(t *testing.T) {
	p := newParser(t)

	cases := []struct {
		name      string
		message   string
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "called marker",
			message:   "Create a todo called Groceries",
			wantTitle: "Groceries",
		},
		{
			name:      "marker stops at field keyword",
			message:   "Create a task titled Rent due 2026-09-01",
			wantTitle: "Rent",
		},
		{
			name:      "bare phrase after the noun",
			message:   "Add a todo Laundry",
			wantTitle: "Laundry",
		},
		{
			name:      "explicit description marker",
			message:   "Create a task called Groceries description: weekly shopping run",
			wantTitle: "Groceries",
			wantDesc:  "weekly shopping run",
		},
		{
			name:      "about marker",
			message:   "Add a task called Dentist about the annual checkup visit",
			wantTitle: "Dentist",
			wantDesc:  "the annual checkup visit",
		},
		{
			name:      "trailing text becomes the description",
			message:   "Create a task called Reports with all quarterly numbers attached",
			wantTitle: "Reports",
			wantDesc:  "all quarterly numbers attached",
		},
		{
			name:      "connective split",
			message:   "Create wash the car and dry it afterwards as a task",
			wantTitle: "wash the car",
			wantDesc:  "dry it afterwards as a task",
		},
		{
			name:      "no usable title defaults",
			message:   "create a task",
			wantTitle: parser.DefaultTitle,
		},
		{
			name:      "create without details defaults",
			message:   "make a new todo",
			wantTitle: parser.DefaultTitle,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.message)
			if got.Action != parser.ActionCreate {
				t.Fatalf("Action = %s, want create", got.Action)
			}
			if got.TaskTitle != tc.wantTitle {
				t.Errorf("TaskTitle = %q, want %q", got.TaskTitle, tc.wantTitle)
			}
			if got.Description != tc.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tc.wantDesc)
			}
		})
	}
}

// Past 8 words the remainder is force-split, with the title capped at 7 words.
func TestParse_CreateLongMessageSplit(t *testing.T) {
	p := newParser(t)

	got := p.Parse("Create prepare slides review notes email team book room order lunch as a task")
	if got.Action != parser.ActionCreate {
		t.Fatalf("Action = %s, want create", got.Action)
	}
	if got.TaskTitle != "prepare slides review notes email team book" {
		t.Errorf("TaskTitle = %q", got.TaskTitle)
	}
	if got.Description != "room order lunch as a task" {
		t.Errorf("Description = %q", got.Description)
	}
}
