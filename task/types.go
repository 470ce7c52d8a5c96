// Package task implements an ordered, in-memory collection of tasks.
//
// Tasks are keyed by name, but names are not required to be unique: every
// name lookup resolves to the first matching task in insertion order.
//
// The public API mirrors the tracker's mutations and queries:
//   - Add, Remove, Edit, MarkCompleted for task lifecycle
//   - FindByName, FilterByStatus, FilterByPriority, List for querying
//   - All, Reverse, Count, CountCompleted, Summarize for display
package task

// Status represents the state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed yet.
	StatusPending Status = "Pending"

	// StatusCompleted indicates the task has been marked as completed.
	StatusCompleted Status = "Completed"
)

// ValidStatuses returns all known status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority is the importance of a task. Any string is accepted; the
// constants are the conventional values.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriorities returns the conventional priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is one of the conventional values.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority, highest first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
