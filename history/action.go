// Package history records the mutating actions applied to a task collection.
//
// The log is informational: actions are listed most recent first and can be
// popped or cleared, but nothing replays them.
package history

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidActionType is returned when input names no known action type.
var ErrInvalidActionType = errors.New("invalid action type")

// ActionType names the kind of mutation an action records.
type ActionType string

const (
	ActionAdd    ActionType = "Add"
	ActionDelete ActionType = "Delete"
	ActionEdit   ActionType = "Edit"
	ActionMark   ActionType = "Mark"
)

// ValidActionTypes returns all known action types.
func ValidActionTypes() []ActionType {
	return []ActionType{ActionAdd, ActionDelete, ActionEdit, ActionMark}
}

// IsValid returns true if the action type is a known value.
func (a ActionType) IsValid() bool {
	for _, valid := range ValidActionTypes() {
		if a == valid {
			return true
		}
	}
	return false
}

// NormalizeActionType maps input that matches a known action type
// case-insensitively onto its canonical spelling. Other input is returned
// trimmed but otherwise verbatim.
func NormalizeActionType(input string) ActionType {
	input = strings.TrimSpace(input)
	for _, kind := range ValidActionTypes() {
		if strings.EqualFold(input, string(kind)) {
			return kind
		}
	}
	return ActionType(input)
}

// Details is the task snapshot carried by Add and Edit actions.
type Details struct {
	Description string
	Priority    string
	Category    string
}

// Action is one recorded mutation.
type Action struct {
	// Type is the kind of mutation.
	Type ActionType `json:"type"`

	// TaskName is the name the mutation was applied to.
	TaskName string `json:"task_name"`

	// Description, Priority and Category snapshot the task for Add and Edit.
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`

	// RecordedAt is when the action was recorded.
	RecordedAt time.Time `json:"recorded_at"`
}

// Details returns the snapshot fields of the action.
func (a Action) Details() Details {
	return Details{
		Description: a.Description,
		Priority:    a.Priority,
		Category:    a.Category,
	}
}

// String formats the action as "Type: name".
func (a Action) String() string {
	return string(a.Type) + ": " + a.TaskName
}
