package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorMode = ColorAuto

// SetColorMode selects whether styled output is produced. Unknown modes
// behave like auto.
func SetColorMode(mode string) {
	colorMode = mode
}

// ColorEnabled reports whether output to stdout should be styled.
func ColorEnabled() bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newRenderer returns a lipgloss renderer for w whose colour profile follows
// ColorEnabled rather than lipgloss's own detection.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if ColorEnabled() {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}
