package task

// Summary holds aggregate counts for a collection.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`

	// CompletionRate is the whole-number percentage of completed tasks,
	// rounded down. It is zero for an empty collection.
	CompletionRate int `json:"completion_rate"`
}

// HasTasks reports whether the summary covers at least one task, which is
// when CompletionRate is meaningful.
func (s Summary) HasTasks() bool {
	return s.Total > 0
}

// Summarize counts the tasks in the collection. Pending covers every task
// that is not completed.
func (c *Collection) Summarize() Summary {
	total := c.Count()
	completed := c.CountCompleted()
	summary := Summary{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		summary.CompletionRate = completed * 100 / total
	}
	return summary
}
