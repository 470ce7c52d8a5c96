package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amonks/tasklist/internal/config"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
	"github.com/amonks/tasklist/tracker"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// session is one run of the menu or shell: a tracker plus the terminal it
// talks to. The tracker lives exactly as long as the session.
type session struct {
	tracker *tracker.Tracker
	cfg     *config.Config
	input   *lineReader
	out     io.Writer
	errOut  io.Writer
	styles  ui.Styles
	width   int
	now     func() time.Time

	// interactive is true when stdin is a terminal.
	interactive bool
}

func newSession(cmd *cobra.Command) *session {
	cfg := loadedConfig
	if cfg == nil {
		cfg = config.Default()
	}

	opts := tracker.Options{}
	if rootVerbose {
		opts.Logger = tracker.NewConsoleLogger(cmd.ErrOrStderr())
	}

	out := cmd.OutOrStdout()
	interactive := stdinIsTerminal(cmd.InOrStdin())
	return &session{
		tracker:     tracker.New(opts),
		cfg:         cfg,
		input:       newLineReader(cmd.InOrStdin(), out, !interactive),
		out:         out,
		errOut:      cmd.ErrOrStderr(),
		styles:      ui.NewStyles(out),
		width:       ui.Width(cfg.Display.Width),
		now:         time.Now,
		interactive: interactive,
	}
}

// close tears down the tracker, releasing every task and action.
func (s *session) close() {
	s.tracker.Close()
}

func stdinIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *session) success(message string) {
	s.println()
	s.println(s.styles.SuccessLine(message))
}

func (s *session) failure(message string) {
	s.println()
	s.println(s.styles.FailureLine(message))
}

// failureMessage maps tracker errors onto user-facing messages.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrNoTasks):
		return "No tasks to delete!"
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found!"
	default:
		return err.Error()
	}
}

// defaultPriority returns input as a priority, falling back to the
// configured default when input is blank.
func (s *session) defaultPriority(input string) task.Priority {
	if input == "" {
		return task.NormalizePriority(s.cfg.Defaults.Priority)
	}
	return task.NormalizePriority(input)
}

// defaultCategory returns input, falling back to the configured default
// when input is blank.
func (s *session) defaultCategory(input string) string {
	if input == "" {
		return s.cfg.Defaults.Category
	}
	return input
}

// lineReader reads one trimmed line of input per prompt.
type lineReader struct {
	reader *bufio.Reader
	out    io.Writer

	// echoNewline ends each prompt line when the user's own newline is
	// not echoed by a terminal.
	echoNewline bool
}

func newLineReader(in io.Reader, out io.Writer, echoNewline bool) *lineReader {
	return &lineReader{reader: bufio.NewReader(in), out: out, echoNewline: echoNewline}
}

// Prompt writes prompt and returns the next line of input. It returns
// io.EOF once input is exhausted.
func (r *lineReader) Prompt(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if prompt != "" && r.echoNewline {
			fmt.Fprintln(r.out)
		}
		return "", err
	}
	if prompt != "" && r.echoNewline {
		fmt.Fprintln(r.out)
	}
	return internalstrings.TrimLine(line), nil
}
