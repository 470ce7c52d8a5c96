package task

import "errors"

var (
	// ErrTaskNotFound is returned when no task has the given name.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoTasks is returned when an operation needs a task but the collection is empty.
	ErrNoTasks = errors.New("no tasks")

	// ErrInvalidStatus is returned when a status filter names no known status.
	ErrInvalidStatus = errors.New("invalid status")
)
