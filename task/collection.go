package task

import (
	"strings"
	"time"
)

// Collection is an ordered set of tasks. Tasks keep insertion order; new
// tasks are appended at the end.
//
// Collection is not safe for concurrent use.
type Collection struct {
	tasks []Task
	seq   int
	now   func() time.Time
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{now: time.Now}
}

// Add appends a new pending task and returns a copy of it.
// Duplicate names are allowed.
func (c *Collection) Add(name, description string, priority Priority, category string) Task {
	now := c.now()
	t := Task{
		ID:          c.nextID(name, now),
		Name:        name,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		Category:    category,
		CreatedAt:   now,
	}
	c.tasks = append(c.tasks, t)
	return t
}

// nextID derives an ID from the name, a per-collection sequence number and
// the creation time, skipping any ID already in use.
func (c *Collection) nextID(name string, now time.Time) string {
	for {
		c.seq++
		id := GenerateID(name, c.seq, now)
		if _, taken := c.Get(id); !taken {
			return id
		}
	}
}

// Remove deletes the first task with the given name, preserving the order of
// the rest.
func (c *Collection) Remove(name string) error {
	if len(c.tasks) == 0 {
		return ErrNoTasks
	}
	i := c.indexOf(name)
	if i < 0 {
		return ErrTaskNotFound
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	return nil
}

// Edit replaces the description and priority of the first task with the
// given name. Status and category are left alone.
func (c *Collection) Edit(name, description string, priority Priority) error {
	i := c.indexOf(name)
	if i < 0 {
		return ErrTaskNotFound
	}
	c.tasks[i].Description = description
	c.tasks[i].Priority = priority
	return nil
}

// MarkCompleted sets the status of the first task with the given name to
// completed. Marking an already completed task succeeds and changes nothing.
func (c *Collection) MarkCompleted(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return ErrTaskNotFound
	}
	if c.tasks[i].Status != StatusCompleted {
		now := c.now()
		c.tasks[i].CompletedAt = &now
	}
	c.tasks[i].Status = StatusCompleted
	return nil
}

// Count returns the number of tasks of any status.
func (c *Collection) Count() int {
	return len(c.tasks)
}

// CountCompleted returns the number of completed tasks.
func (c *Collection) CountCompleted() int {
	count := 0
	for _, t := range c.tasks {
		if t.Status == StatusCompleted {
			count++
		}
	}
	return count
}

// FindByName returns the first task whose name contains keyword.
// An empty keyword matches every name, so it returns the first task.
func (c *Collection) FindByName(keyword string) (Task, bool) {
	for _, t := range c.tasks {
		if strings.Contains(t.Name, keyword) {
			return t, true
		}
	}
	return Task{}, false
}

// Lookup returns the first task whose name is exactly name.
func (c *Collection) Lookup(name string) (Task, bool) {
	i := c.indexOf(name)
	if i < 0 {
		return Task{}, false
	}
	return c.tasks[i], true
}

// Get returns the task with the given ID.
func (c *Collection) Get(id string) (Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns every task in insertion order.
func (c *Collection) All() []Task {
	return append([]Task(nil), c.tasks...)
}

// Reverse returns every task in reverse insertion order. The collection
// itself is not reordered.
func (c *Collection) Reverse() []Task {
	reversed := make([]Task, 0, len(c.tasks))
	for i := len(c.tasks) - 1; i >= 0; i-- {
		reversed = append(reversed, c.tasks[i])
	}
	return reversed
}

// Clear removes every task.
func (c *Collection) Clear() {
	clear(c.tasks)
	c.tasks = nil
}

func (c *Collection) indexOf(name string) int {
	for i := range c.tasks {
		if c.tasks[i].Name == name {
			return i
		}
	}
	return -1
}
