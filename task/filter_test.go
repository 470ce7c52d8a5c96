package task

import (
	"slices"
	"testing"
)

func seedFilterCollection(t *testing.T) *Collection {
	t.Helper()

	c := newTestCollection(t)
	c.Add("Write report", "", PriorityHigh, "Work")
	c.Add("Buy milk", "", PriorityLow, "Personal")
	c.Add("Fix bike", "", PriorityHigh, "Personal")
	c.Add("Email boss", "", PriorityMedium, "Work")
	if err := c.MarkCompleted("Buy milk"); err != nil {
		t.Fatalf("failed to mark task: %v", err)
	}
	if err := c.MarkCompleted("Email boss"); err != nil {
		t.Fatalf("failed to mark task: %v", err)
	}
	return c
}

func TestCollection_FilterByStatus(t *testing.T) {
	c := seedFilterCollection(t)

	completed := c.FilterByStatus(StatusCompleted)
	if got := taskNames(completed); !equalStrings(got, []string{"Buy milk", "Email boss"}) {
		t.Fatalf("unexpected completed tasks: %v", got)
	}
	if len(completed) != c.CountCompleted() {
		t.Fatalf("expected %d completed tasks, got %d", c.CountCompleted(), len(completed))
	}

	pending := c.FilterByStatus(StatusPending)
	if got := taskNames(pending); !equalStrings(got, []string{"Write report", "Fix bike"}) {
		t.Fatalf("unexpected pending tasks: %v", got)
	}
}

func TestCollection_FilterByStatus_ExactMatch(t *testing.T) {
	c := seedFilterCollection(t)

	if got := c.FilterByStatus(Status("completed")); len(got) != 0 {
		t.Fatalf("expected lowercase status to match nothing, got %v", taskNames(got))
	}
}

func TestCollection_FilterByStatus_Restartable(t *testing.T) {
	c := seedFilterCollection(t)

	first := taskNames(c.FilterByStatus(StatusCompleted))
	second := taskNames(c.FilterByStatus(StatusCompleted))
	if !equalStrings(first, second) {
		t.Fatalf("expected repeated filters to agree, got %v and %v", first, second)
	}
	if c.Count() != 4 {
		t.Fatalf("expected filtering to leave 4 tasks, got %d", c.Count())
	}
}

func TestCollection_FilterByPriority(t *testing.T) {
	c := seedFilterCollection(t)

	tests := []struct {
		priority Priority
		want     []string
	}{
		{priority: PriorityHigh, want: []string{"Write report", "Fix bike"}},
		{priority: PriorityMedium, want: []string{"Email boss"}},
		{priority: PriorityLow, want: []string{"Buy milk"}},
		{priority: Priority("Critical"), want: []string{}},
	}

	for _, tt := range tests {
		got := taskNames(c.FilterByPriority(tt.priority))
		if !equalStrings(got, tt.want) {
			t.Errorf("FilterByPriority(%q) = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestCollection_List_CombinesFilters(t *testing.T) {
	c := seedFilterCollection(t)

	status := StatusPending
	category := "Personal"
	got := taskNames(c.List(ListFilter{Status: &status, Category: &category}))
	if !equalStrings(got, []string{"Fix bike"}) {
		t.Fatalf("unexpected tasks: %v", got)
	}

	got = taskNames(c.List(ListFilter{NameSubstring: "i"}))
	if !equalStrings(got, []string{"Write report", "Buy milk", "Fix bike", "Email boss"}) {
		t.Fatalf("unexpected tasks: %v", got)
	}

	got = taskNames(c.List(ListFilter{}))
	if len(got) != 4 {
		t.Fatalf("expected empty filter to match all tasks, got %v", got)
	}
}

func TestSortByPriority(t *testing.T) {
	tasks := []Task{
		{Name: "a", Priority: PriorityLow},
		{Name: "b", Priority: "Urgent"},
		{Name: "c", Priority: PriorityHigh},
		{Name: "d", Priority: PriorityLow},
		{Name: "e", Priority: PriorityMedium},
	}

	SortByPriority(tasks)

	var got []string
	for _, item := range tasks {
		got = append(got, item.Name)
	}
	if want := []string{"c", "e", "a", "d", "b"}; !slices.Equal(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}
