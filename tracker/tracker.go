// Package tracker ties a task collection to its action history.
//
// Every successful mutation through a Tracker records a matching action:
// Add, Delete, Edit or Mark. Failed mutations record nothing.
package tracker

import (
	"fmt"

	"github.com/amonks/tasklist/history"
	"github.com/amonks/tasklist/task"
)

// Options configures a Tracker.
type Options struct {
	// Logger receives each recorded action. If nil, nothing is logged.
	Logger Logger
}

// Tracker owns one task collection and one action log.
type Tracker struct {
	tasks   *task.Collection
	history *history.Log
	logger  Logger
}

// New returns a tracker with an empty collection and history.
func New(opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return &Tracker{
		tasks:   task.New(),
		history: history.NewLog(),
		logger:  logger,
	}
}

// Add creates a pending task and records an Add action.
func (t *Tracker) Add(name, description string, priority task.Priority, category string) task.Task {
	created := t.tasks.Add(name, description, priority, category)
	t.record(history.ActionAdd, name, history.Details{
		Description: description,
		Priority:    string(priority),
		Category:    category,
	})
	return created
}

// Delete removes the first task with the given name and records a Delete
// action.
func (t *Tracker) Delete(name string) error {
	if err := t.tasks.Remove(name); err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	t.record(history.ActionDelete, name, history.Details{})
	return nil
}

// Edit updates the first task with the given name and records an Edit
// action.
func (t *Tracker) Edit(name, description string, priority task.Priority) error {
	if err := t.tasks.Edit(name, description, priority); err != nil {
		return fmt.Errorf("edit %q: %w", name, err)
	}
	t.record(history.ActionEdit, name, history.Details{
		Description: description,
		Priority:    string(priority),
	})
	return nil
}

// Complete marks the first task with the given name as completed and
// records a Mark action.
func (t *Tracker) Complete(name string) error {
	if err := t.tasks.MarkCompleted(name); err != nil {
		return fmt.Errorf("complete %q: %w", name, err)
	}
	t.record(history.ActionMark, name, history.Details{})
	return nil
}

func (t *Tracker) record(kind history.ActionType, name string, details history.Details) {
	action := t.history.Record(kind, name, details)
	t.logger.Action(action)
}

// Search returns the first task whose name contains keyword.
func (t *Tracker) Search(keyword string) (task.Task, bool) {
	return t.tasks.FindByName(keyword)
}

// Lookup returns the first task named exactly name.
func (t *Tracker) Lookup(name string) (task.Task, bool) {
	return t.tasks.Lookup(name)
}

// Get returns the task with the given ID.
func (t *Tracker) Get(id string) (task.Task, bool) {
	return t.tasks.Get(id)
}

// List returns every task in insertion order.
func (t *Tracker) List() []task.Task {
	return t.tasks.All()
}

// Reverse returns every task in reverse insertion order.
func (t *Tracker) Reverse() []task.Task {
	return t.tasks.Reverse()
}

// Filter returns the tasks matching filter.
func (t *Tracker) Filter(filter task.ListFilter) []task.Task {
	return t.tasks.List(filter)
}

// FilterByStatus returns the tasks with exactly the given status.
func (t *Tracker) FilterByStatus(status task.Status) []task.Task {
	return t.tasks.FilterByStatus(status)
}

// FilterByPriority returns the tasks with exactly the given priority.
func (t *Tracker) FilterByPriority(priority task.Priority) []task.Task {
	return t.tasks.FilterByPriority(priority)
}

// Count returns the number of tasks.
func (t *Tracker) Count() int {
	return t.tasks.Count()
}

// Summary returns aggregate counts for the collection.
func (t *Tracker) Summary() task.Summary {
	return t.tasks.Summarize()
}

// History returns every recorded action, most recent first.
func (t *Tracker) History() []history.Action {
	return t.history.List()
}

// HistoryLen returns the number of recorded actions.
func (t *Tracker) HistoryLen() int {
	return t.history.Len()
}

// LastAction returns the most recent action.
func (t *Tracker) LastAction() (history.Action, bool) {
	return t.history.Peek()
}

// PopHistory removes the most recent action from the history. The task
// collection is not touched.
func (t *Tracker) PopHistory() (history.Action, bool) {
	return t.history.Pop()
}

// ClearHistory removes every recorded action.
func (t *Tracker) ClearHistory() {
	t.history.Clear()
}

// Close releases every task and action.
func (t *Tracker) Close() {
	t.tasks.Clear()
	t.history.Clear()
}
