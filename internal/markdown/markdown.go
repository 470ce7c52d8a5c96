// Package markdown renders task descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output at the given width.
// If rendering fails the normalized input is returned unchanged. Blank input
// renders as the empty string.
func Render(width int, input string) (rendered string) {
	value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(input))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	r := markdownRenderer(width)
	if r == nil {
		return value
	}

	defer func() {
		if recover() != nil {
			rendered = value
		}
	}()

	formatted, err := r.Render(value)
	if err != nil {
		return value
	}
	formatted = trimTrailingSpace(internalstrings.TrimTrailingNewlines(formatted))
	formatted = strings.TrimLeft(formatted, "\n")
	if strings.TrimSpace(formatted) == "" {
		return value
	}
	return formatted
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

// trimTrailingSpace removes the padding glamour adds to the end of each line.
func trimTrailingSpace(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
