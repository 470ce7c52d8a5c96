package ui

import (
	"os"
	"strings"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is used when no width is configured and stdout is not a
// terminal.
const DefaultWidth = 80

// Width resolves a configured width. Zero means the terminal width.
func Width(configured int) int {
	if configured > 0 {
		return configured
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// WrapIndented word-wraps text to width, counting the indent, and prefixes
// every line with spaces.
func WrapIndented(text string, width, spaces int) string {
	text = internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(text))
	if strings.TrimSpace(text) == "" {
		return ""
	}
	wrapWidth := width - spaces
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	wrapped := wordwrap.String(text, wrapWidth)
	if spaces <= 0 {
		return wrapped
	}
	return indent.String(wrapped, uint(spaces))
}
