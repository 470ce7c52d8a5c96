package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tasklist/history"
	"github.com/charmbracelet/lipgloss"
)

// Logger receives recorded actions.
type Logger interface {
	Action(history.Action)
}

type noopLogger struct{}

func (noopLogger) Action(history.Action) {}

// ConsoleLogger writes one styled line per recorded action.
type ConsoleLogger struct {
	writer     io.Writer
	labelStyle lipgloss.Style
}

// NewConsoleLogger builds a styled logger for interactive output.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		writer:     writer,
		labelStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	}
}

// Action logs a recorded action.
func (logger *ConsoleLogger) Action(action history.Action) {
	if logger == nil {
		return
	}
	fmt.Fprintln(logger.writer, formatActionLine(logger.labelStyle.Render(actionLabel(action.Type)), action))
}

func actionLabel(kind history.ActionType) string {
	return strings.ToLower(string(kind))
}

func formatActionLine(label string, action history.Action) string {
	var fields []string
	if action.Description != "" {
		fields = append(fields, fmt.Sprintf("description=%q", action.Description))
	}
	if action.Priority != "" {
		fields = append(fields, fmt.Sprintf("priority=%q", action.Priority))
	}
	if action.Category != "" {
		fields = append(fields, fmt.Sprintf("category=%q", action.Category))
	}
	line := fmt.Sprintf("%s %q", label, action.TaskName)
	if len(fields) == 0 {
		return line
	}
	return line + " " + strings.Join(fields, " ")
}
