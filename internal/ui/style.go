package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	successMark = "✓"
	failureMark = "✗"
	bullet      = "•"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Label   lipgloss.Style
}

// NewStyles builds styles for output written to w.
func NewStyles(w io.Writer) Styles {
	renderer := newRenderer(w)
	return Styles{
		Success: renderer.NewStyle().Foreground(lipgloss.Color("34")),
		Failure: renderer.NewStyle().Foreground(lipgloss.Color("160")),
		Heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Muted:   renderer.NewStyle().Foreground(lipgloss.Color("244")),
		Label:   renderer.NewStyle().Bold(true),
	}
}

// SuccessLine formats a success message, e.g. "✓ Task added successfully!".
func (s Styles) SuccessLine(message string) string {
	return s.Success.Render(successMark + " " + message)
}

// FailureLine formats a failure message, e.g. "✗ Task not found!".
func (s Styles) FailureLine(message string) string {
	return s.Failure.Render(failureMark + " " + message)
}

// BulletLine formats an indented list item.
func (s Styles) BulletLine(text string) string {
	return "  " + bullet + " " + text
}

// Banner formats a section heading such as "========== ALL TASKS ==========".
func (s Styles) Banner(title string) string {
	return s.Heading.Render("========== " + title + " ==========")
}
