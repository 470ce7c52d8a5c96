package task

import "testing"

func TestCollection_Summarize(t *testing.T) {
	c := newTestCollection(t)
	c.Add("a", "", PriorityLow, "")
	c.Add("b", "", PriorityLow, "")
	c.Add("c", "", PriorityLow, "")
	if err := c.MarkCompleted("b"); err != nil {
		t.Fatalf("failed to mark task: %v", err)
	}

	got := c.Summarize()
	want := Summary{Total: 3, Completed: 1, Pending: 2, CompletionRate: 33}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if !got.HasTasks() {
		t.Error("expected summary to report tasks")
	}
}

func TestCollection_Summarize_Empty(t *testing.T) {
	c := newTestCollection(t)

	got := c.Summarize()
	if got != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
	if got.HasTasks() {
		t.Error("expected empty summary to report no tasks")
	}
}

func TestCollection_Summarize_AllCompleted(t *testing.T) {
	c := newTestCollection(t)
	c.Add("a", "", PriorityLow, "")
	c.Add("b", "", PriorityLow, "")
	if err := c.MarkCompleted("a"); err != nil {
		t.Fatalf("failed to mark task: %v", err)
	}
	if err := c.MarkCompleted("b"); err != nil {
		t.Fatalf("failed to mark task: %v", err)
	}

	got := c.Summarize()
	if got.CompletionRate != 100 {
		t.Fatalf("expected 100%% completion, got %d", got.CompletionRate)
	}
	if got.Pending != 0 {
		t.Fatalf("expected 0 pending, got %d", got.Pending)
	}
}
