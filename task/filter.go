package task

import (
	"cmp"
	"slices"
	"strings"
)

// ListFilter configures which tasks to return. Nil fields match everything.
type ListFilter struct {
	// Status filters by exact status match.
	Status *Status

	// Priority filters by exact priority match.
	Priority *Priority

	// Category filters by exact category match.
	Category *string

	// NameSubstring filters to tasks with this substring in the name.
	NameSubstring string
}

// List returns the tasks matching every set field of the filter, in
// insertion order.
func (c *Collection) List(filter ListFilter) []Task {
	var result []Task
	for _, t := range c.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.NameSubstring != "" && !strings.Contains(t.Name, filter.NameSubstring) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// FilterByStatus returns the tasks with exactly the given status.
func (c *Collection) FilterByStatus(status Status) []Task {
	return c.List(ListFilter{Status: &status})
}

// FilterByPriority returns the tasks with exactly the given priority.
func (c *Collection) FilterByPriority(priority Priority) []Task {
	return c.List(ListFilter{Priority: &priority})
}

// SortByPriority orders tasks High, Medium, Low, then any other priority,
// keeping insertion order within each rank. It sorts in place.
func SortByPriority(tasks []Task) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return cmp.Compare(PriorityRank(a.Priority), PriorityRank(b.Priority))
	})
}
