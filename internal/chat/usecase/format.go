package usecase

import (
	"fmt"
	"strings"

	"todo-chat-api/internal/model"
)

const updateComingSoon = "Update functionality is coming soon! For now, you can use the edit button in the UI."

const createClarification = "I'd be happy to create a task for you! Please tell me what the task should be called and provide some details about it."

const completeClarification = "Please specify which task you'd like to complete. For example: 'Complete the todo Buy groceries'"

const deleteClarification = "Please specify which task you'd like to delete. For example: 'Delete the todo Buy groceries'"

const helpText = `I can help you manage your tasks! Here's what I can do:

• Create tasks: "Create a todo called Buy groceries" or "Add a task to finish the report"
• List tasks: "Show my todos" or "What are my tasks?"
• Complete tasks: "Complete the todo Buy groceries" or "Mark Buy groceries as done"
• Delete tasks: "Delete the todo Buy groceries" or "Remove the task Call mom"
• Count tasks: "How many todos do I have?"

Just tell me what you'd like to do!`

const unknownText = `I'm not sure what you mean. Try saying:
• "Show my todos"
• "Create a task called Buy groceries"
• "Complete the todo Buy groceries"
• "How many tasks do I have?"
• "Help" to see everything I can do`

// formatList renders the numbered task listing with status glyphs.
func formatList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "You don't have any tasks yet. Create one to get started!"
	}

	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		glyph := "○"
		if t.Status == model.StatusCompleted {
			glyph = "✓"
		}
		line := fmt.Sprintf("%d. %s %s", i+1, glyph, t.Title)
		if t.Priority != "" {
			line += fmt.Sprintf(" [%s]", t.Priority)
		}
		if t.DueDate != "" {
			line += fmt.Sprintf(" (due: %s)", t.DueDate)
		}
		lines = append(lines, line)
	}
	return "Here are your tasks:\n\n" + strings.Join(lines, "\n")
}

// formatCandidates renders the "- Title (Description)" lines used when a
// fragment fails to resolve.
func formatCandidates(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.Description != "" {
			lines = append(lines, fmt.Sprintf("- %s (%s)", t.Title, t.Description))
		} else {
			lines = append(lines, fmt.Sprintf("- %s", t.Title))
		}
	}
	return strings.Join(lines, "\n")
}

func formatCreated(title, description string, priority model.Priority, dueDate string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Created task: %q", title)
	if description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", description)
	}
	if priority != "" {
		fmt.Fprintf(&b, "\nPriority: %s", priority)
	}
	if dueDate != "" {
		fmt.Fprintf(&b, "\nDue date: %s", dueDate)
	}
	return b.String()
}

func formatCount(tasks []model.Task) string {
	pending := 0
	completed := 0
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			completed++
		default:
			pending++
		}
	}
	plural := "s"
	if len(tasks) == 1 {
		plural = ""
	}
	return fmt.Sprintf("You have %d task%s total (%d pending, %d completed).", len(tasks), plural, pending, completed)
}

// synthesizeDescription expands a terse or absent user description into the
// fuller text the assistant stores with a new task.
func synthesizeDescription(title, userDesc string) string {
	if len(userDesc) >= 50 {
		out := userDesc
		if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "!") && !strings.HasSuffix(out, "?") {
			out += "."
		}
		return out + " Please ensure this task is completed thoroughly, all requirements are met, verify completion criteria, and check all details before marking as complete."
	}

	// Only title words longer than two characters carry meaning here.
	var words []string
	for _, w := range strings.Fields(title) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return fmt.Sprintf("Task: %s. This is an important task that needs to be completed. Please review all requirements carefully, ensure everything is done properly, verify completion criteria, and check all details before marking as done.", title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This task involves %s. ", strings.ToLower(title))
	if len(words) > 1 {
		fmt.Fprintf(&b, "The task requires attention to: %s. ", strings.Join(words[1:], " "))
	}
	if len(userDesc) > 10 {
		fmt.Fprintf(&b, "Additional details: %s. ", userDesc)
	}
	b.WriteString("Please ensure all related activities are completed thoroughly. Review all requirements, verify completion criteria, and ensure everything is done properly before marking this task as complete.")
	return b.String()
}
