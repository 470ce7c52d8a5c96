package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is an 8-char identifier assigned when the task is added.
	ID string `json:"id"`

	// Name identifies the task for every name-keyed operation.
	Name string `json:"name"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Priority is the importance level, conventionally High, Medium or Low.
	Priority Priority `json:"priority"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Category groups tasks, e.g. Work or Personal.
	Category string `json:"category"`

	// CreatedAt is when the task was added.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was first marked completed (nil while pending).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the task has been marked completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
