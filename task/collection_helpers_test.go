package task

import (
	"testing"
	"time"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()

	clock := time.Date(2024, 3, 2, 9, 12, 0, 0, time.UTC)
	c := New()
	c.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return c
}

func taskNames(tasks []Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
