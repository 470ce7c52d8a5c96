package history

import "time"

// Log is a last-in-first-out record of actions.
//
// Log is not safe for concurrent use.
type Log struct {
	// entries holds actions oldest first; the top of the stack is the end.
	entries []Action
	now     func() time.Time
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record pushes a new action onto the log and returns it.
func (l *Log) Record(kind ActionType, taskName string, details Details) Action {
	action := Action{
		Type:        kind,
		TaskName:    taskName,
		Description: details.Description,
		Priority:    details.Priority,
		Category:    details.Category,
		RecordedAt:  l.now(),
	}
	l.entries = append(l.entries, action)
	return action
}

// Peek returns the most recent action without removing it.
func (l *Log) Peek() (Action, bool) {
	if len(l.entries) == 0 {
		return Action{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Pop removes and returns the most recent action. It reports false when the
// log is empty.
func (l *Log) Pop() (Action, bool) {
	action, ok := l.Peek()
	if !ok {
		return Action{}, false
	}
	l.entries[len(l.entries)-1] = Action{}
	l.entries = l.entries[:len(l.entries)-1]
	return action, true
}

// List returns every action, most recent first.
func (l *Log) List() []Action {
	actions := make([]Action, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		actions = append(actions, l.entries[i])
	}
	return actions
}

// Len returns the number of recorded actions.
func (l *Log) Len() int {
	return len(l.entries)
}

// IsEmpty reports whether the log has no actions.
func (l *Log) IsEmpty() bool {
	return len(l.entries) == 0
}

// Clear removes every action.
func (l *Log) Clear() {
	clear(l.entries)
	l.entries = nil
}
