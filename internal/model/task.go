package model

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the task lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is the typed view of a task held by the external Task Store.
// The chat pipeline only reads it; mutations go through the repository.
type Task struct {
	ID          string   // store-assigned, treated as opaque
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     string // YYYY-MM-DD, empty when unset
	CreatedAt   string // RFC3339 string from the store API
	UpdatedAt   string // RFC3339 string from the store API
}
