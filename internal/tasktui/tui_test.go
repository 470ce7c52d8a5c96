package tasktui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amonks/tasklist/history"
	"github.com/amonks/tasklist/task"
	"github.com/amonks/tasklist/tracker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	testWidth  = 100
	testHeight = 26
)

func useASCIIRenderer(t *testing.T) {
	originalProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(originalProfile)
	})
}

func newTestModel(t *testing.T, setup func(*tracker.Tracker)) (model, *tracker.Tracker) {
	t.Helper()
	useASCIIRenderer(t)

	tr := tracker.New(tracker.Options{})
	if setup != nil {
		setup(tr)
	}
	m := newModel(tr, Options{DefaultPriority: task.PriorityMedium, DefaultCategory: "Personal"})
	m.width = testWidth
	m.height = testHeight
	m.resize()
	return m, tr
}

func press(m model, keys ...tea.KeyMsg) model {
	for _, key := range keys {
		updated, _ := m.Update(key)
		m = updated.(model)
	}
	return m
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestAddTask(t *testing.T) {
	m, tr := newTestModel(t, nil)

	m = press(m, runes("a"), runes("Buy milk"), keyTab, runes("2 litres"), keySave)

	tasks := tr.List()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Name != "Buy milk" || got.Description != "2 litres" {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.Priority != task.PriorityMedium || got.Category != "Personal" {
		t.Fatalf("expected defaults Medium/Personal, got %q/%q", got.Priority, got.Category)
	}
	if m.focus != focusList {
		t.Fatal("expected focus to return to the list after saving")
	}
	if m.status != "Task added successfully!" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if action, _ := tr.LastAction(); action.Type != history.ActionAdd {
		t.Fatalf("expected Add on top of history, got %+v", action)
	}
}

func TestAddTaskRequiresName(t *testing.T) {
	m, tr := newTestModel(t, nil)

	m = press(m, runes("a"), keySave)

	if tr.Count() != 0 {
		t.Fatalf("expected no tasks, got %d", tr.Count())
	}
	if m.statusLevel != statusError || m.status != "Task name is required" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.focus != focusDetail {
		t.Fatal("expected the draft to stay open")
	}
}

func TestCompleteSelected(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "", task.PriorityHigh, "")
		tr.Add("B", "", task.PriorityLow, "")
	})

	m = press(m, runes("j"), runes("x"))

	completed := tr.FilterByStatus(task.StatusCompleted)
	if len(completed) != 1 || completed[0].Name != "B" {
		t.Fatalf("expected only B completed, got %+v", completed)
	}
	if m.status != "Task marked as completed!" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestDeleteTaskAsksFirst(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "", task.PriorityHigh, "")
	})

	m = press(m, runes("d"))
	if m.modal.kind != modalDeleteTask {
		t.Fatalf("expected delete confirmation, got modal %v", m.modal.kind)
	}
	m = press(m, keyEnter)
	if tr.Count() != 1 {
		t.Fatal("expected cancel to be the default choice")
	}

	m = press(m, runes("d"), keyLeft, keyEnter)
	if tr.Count() != 0 {
		t.Fatalf("expected task to be deleted, got %d tasks", tr.Count())
	}
	if action, _ := tr.LastAction(); action.Type != history.ActionDelete {
		t.Fatalf("expected Delete on top of history, got %+v", action)
	}
	if m.status != "Task deleted successfully!" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestEditTask(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "old", task.PriorityHigh, "Work")
	})

	m = press(m, keyEnter, runes("!"), keySave)

	got, _ := tr.Lookup("A")
	if got.Description != "old!" {
		t.Fatalf("expected description %q, got %q", "old!", got.Description)
	}
	if got.Priority != task.PriorityHigh || got.Category != "Work" {
		t.Fatalf("expected priority and category to be kept, got %+v", got)
	}
	if action, _ := tr.LastAction(); action.Type != history.ActionEdit {
		t.Fatalf("expected Edit on top of history, got %+v", action)
	}
}

func TestEscDiscardsEdits(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "old", task.PriorityHigh, "")
	})

	m = press(m, keyEnter, runes("zzz"), keyEsc)
	if m.modal.kind != modalDiscardEdits {
		t.Fatalf("expected discard confirmation, got modal %v", m.modal.kind)
	}

	m = press(m, runes("y"))
	if m.focus != focusList {
		t.Fatal("expected focus to return to the list")
	}
	if got, _ := tr.Lookup("A"); got.Description != "old" {
		t.Fatalf("expected description to be unchanged, got %q", got.Description)
	}
	if len(tr.History()) != 1 {
		t.Fatalf("expected discarded edits to record nothing, got %d actions", len(tr.History()))
	}
}

func TestHistoryTab(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "", task.PriorityHigh, "")
		if err := tr.Complete("A"); err != nil {
			t.Fatalf("complete: %v", err)
		}
	})

	m = press(m, runes("2"))
	if m.activeTab != tabHistory {
		t.Fatal("expected history tab to be active")
	}
	if !strings.Contains(m.View(), "1. Mark: A") {
		t.Fatalf("expected most recent action first, got:\n%s", m.View())
	}

	m = press(m, runes("p"))
	if n := len(tr.History()); n != 1 {
		t.Fatalf("expected 1 action after pop, got %d", n)
	}
	if got, _ := tr.Lookup("A"); !got.IsCompleted() {
		t.Fatal("expected pop to leave the task alone")
	}

	m = press(m, runes("C"), runes("y"))
	if len(tr.History()) != 0 {
		t.Fatal("expected history to be cleared")
	}

	m = press(m, runes("p"))
	if m.status != "No action history!" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestViewShowsTasksAndSummary(t *testing.T) {
	m, _ := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("Buy milk", "", task.PriorityHigh, "")
		tr.Add("Fix bike", "", task.PriorityLow, "")
		if err := tr.Complete("Fix bike"); err != nil {
			t.Fatalf("complete: %v", err)
		}
	})

	view := m.View()
	for _, want := range []string{"[1] Tasks", "[2] History", "[ ] Buy milk  High", "[x] Fix bike  Low", "1/2 done (50%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if view := m.View(); !strings.Contains(view, "No tasks yet!") {
		t.Fatalf("expected empty hint, got:\n%s", view)
	}
	m = press(m, runes("x"))
	if m.status != "No tasks yet!" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestRunRequiresTracker(t *testing.T) {
	if err := Run(context.Background(), nil, Options{}); !errors.Is(err, ErrNoTracker) {
		t.Fatalf("expected ErrNoTracker, got %v", err)
	}
}

func TestFormatTaskItem(t *testing.T) {
	item := taskItem{task: task.Task{Name: "Write report", Priority: task.PriorityHigh, Status: task.StatusCompleted}}

	if got := formatTaskItem(item, 0); got != "[x] Write report  High" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := formatTaskItem(item, 10); got != "[x] Wri..." {
		t.Fatalf("unexpected truncated line %q", got)
	}
}

func TestSplitWidths(t *testing.T) {
	tests := []struct {
		width, left, right int
	}{
		{width: 120, left: 40, right: 80},
		{width: 60, left: 30, right: 30},
		{width: 40, left: 20, right: 20},
	}
	for _, tt := range tests {
		left, right := splitWidths(tt.width)
		if left != tt.left || right != tt.right {
			t.Errorf("splitWidths(%d) = %d, %d; want %d, %d", tt.width, left, right, tt.left, tt.right)
		}
	}
}

func TestDuplicateNameOnlyFirstCanChange(t *testing.T) {
	m, tr := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "first", task.PriorityHigh, "")
		tr.Add("A", "second", task.PriorityLow, "")
	})

	m = press(m, runes("j"), runes("x"))
	if got := tr.FilterByStatus(task.StatusCompleted); len(got) != 0 {
		t.Fatalf("expected nothing completed, got %+v", got)
	}
	if m.statusLevel != statusError || !strings.Contains(m.status, "only the first one can be changed") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = press(m, runes("d"))
	if m.modal.kind != modalNone {
		t.Fatalf("expected no delete confirmation, got modal %v", m.modal.kind)
	}
	if tr.Count() != 2 {
		t.Fatalf("expected both tasks to remain, got %d", tr.Count())
	}

	m = press(m, keyEnter, runes("!"), keySave)
	if got, _ := tr.Lookup("A"); got.Description != "first" {
		t.Fatalf("expected first task to be untouched, got %q", got.Description)
	}
	if m.focus != focusDetail {
		t.Fatal("expected the edit to stay open")
	}

	m = press(m, keyEsc, runes("y"), runes("k"), runes("x"))
	if got := tr.FilterByStatus(task.StatusCompleted); len(got) != 1 || got[0].Description != "first" {
		t.Fatalf("expected the first task completed, got %+v", got)
	}
	if len(tr.History()) != 3 {
		t.Fatalf("expected 2 adds and 1 mark, got %d actions", len(tr.History()))
	}
}

func TestHistoryTabCountsActions(t *testing.T) {
	m, _ := newTestModel(t, func(tr *tracker.Tracker) {
		tr.Add("A", "", task.PriorityHigh, "")
		tr.Add("B", "", task.PriorityHigh, "")
	})

	if view := m.View(); !strings.Contains(view, "[2] History (2)") {
		t.Fatalf("expected history count in tab bar, got:\n%s", view)
	}
}
