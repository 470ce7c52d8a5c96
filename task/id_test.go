package task

import (
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	timestamp := time.Date(2024, 3, 2, 9, 12, 0, 0, time.UTC)
	id := GenerateID("Buy milk", 1, timestamp)

	if len(id) != IDLength {
		t.Fatalf("expected ID length %d, got %d: %q", IDLength, len(id), id)
	}
	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestGenerateID_Deterministic(t *testing.T) {
	timestamp := time.Date(2024, 3, 2, 9, 12, 0, 0, time.UTC)

	if GenerateID("A", 1, timestamp) != GenerateID("A", 1, timestamp) {
		t.Error("same inputs should produce same ID")
	}
	if GenerateID("A", 1, timestamp) == GenerateID("A", 2, timestamp) {
		t.Error("different sequence numbers should produce different IDs")
	}
	if GenerateID("A", 1, timestamp) == GenerateID("A", 1, timestamp.Add(time.Nanosecond)) {
		t.Error("different timestamps should produce different IDs")
	}
}
