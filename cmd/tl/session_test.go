package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/amonks/tasklist/task"
)

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{task.ErrNoTasks, "No tasks to delete!"},
		{fmt.Errorf("delete %q: %w", "x", task.ErrNoTasks), "No tasks to delete!"},
		{fmt.Errorf("edit %q: %w", "x", task.ErrTaskNotFound), "Task not found!"},
		{errors.New("boom"), "boom"},
	}

	for _, tc := range cases {
		if got := failureMessage(tc.err); got != tc.want {
			t.Errorf("failureMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestLineReader_Prompt(t *testing.T) {
	var out bytes.Buffer
	r := newLineReader(strings.NewReader("  first  \r\nlast"), &out, true)

	got, err := r.Prompt("Name: ")
	if err != nil {
		t.Fatalf("first prompt: %v", err)
	}
	if got != "first" {
		t.Fatalf("expected trimmed line %q, got %q", "first", got)
	}

	got, err = r.Prompt("Again: ")
	if err != nil {
		t.Fatalf("second prompt: %v", err)
	}
	if got != "last" {
		t.Fatalf("expected unterminated last line %q, got %q", "last", got)
	}

	if _, err := r.Prompt("More: "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	want := "Name: \nAgain: \nMore: \n"
	if out.String() != want {
		t.Fatalf("expected prompts %q, got %q", want, out.String())
	}
}

func TestLineReader_NoEchoOnTerminal(t *testing.T) {
	var out bytes.Buffer
	r := newLineReader(strings.NewReader("x\n"), &out, false)

	if _, err := r.Prompt("> "); err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if out.String() != "> " {
		t.Fatalf("expected bare prompt, got %q", out.String())
	}
}

func TestSession_Defaults(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.cfg.Defaults.Priority = "high"
	s.cfg.Defaults.Category = "Work"

	if got := s.defaultPriority(""); got != task.PriorityHigh {
		t.Errorf("expected configured priority High, got %q", got)
	}
	if got := s.defaultPriority("low"); got != task.PriorityLow {
		t.Errorf("expected normalized priority Low, got %q", got)
	}
	if got := s.defaultPriority("Urgent"); got != "Urgent" {
		t.Errorf("expected unknown priority to pass through, got %q", got)
	}
	if got := s.defaultCategory(""); got != "Work" {
		t.Errorf("expected configured category Work, got %q", got)
	}
	if got := s.defaultCategory("Home"); got != "Home" {
		t.Errorf("expected explicit category Home, got %q", got)
	}
}
