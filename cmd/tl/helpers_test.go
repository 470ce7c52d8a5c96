package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/tracker"
	"github.com/spf13/cobra"
)

// disableColor turns styling off for the duration of the test.
func disableColor(t *testing.T) {
	t.Helper()
	ui.SetColorMode(ui.ColorNever)
	t.Cleanup(func() { ui.SetColorMode(ui.ColorAuto) })
}

// newTestSession returns a non-interactive session reading input and
// writing to the returned buffer.
func newTestSession(t *testing.T, input string) (*session, *bytes.Buffer) {
	t.Helper()
	disableColor(t)

	out := &bytes.Buffer{}
	s := &session{
		tracker: tracker.New(tracker.Options{}),
		cfg:     config.Default(),
		input:   newLineReader(strings.NewReader(input), out, true),
		out:     out,
		errOut:  io.Discard,
		styles:  ui.NewStyles(out),
		width:   80,
		now: func() time.Time {
			return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		},
	}
	t.Cleanup(s.close)
	return s, out
}

// newTestCommand returns a command wired to input, for driving runMenu and
// runShell end to end.
func newTestCommand(t *testing.T, input string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	disableColor(t)

	prevConfig := loadedConfig
	loadedConfig = config.Default()
	t.Cleanup(func() { loadedConfig = prevConfig })

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	return cmd, out
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}
