package task

import "testing"

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{Status("pending"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		priority Priority
		want     bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{Priority("Urgent"), false},
	}

	for _, tt := range tests {
		if got := tt.priority.IsValid(); got != tt.want {
			t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityRank(PriorityHigh) >= PriorityRank(PriorityMedium) {
		t.Error("expected High to rank before Medium")
	}
	if PriorityRank(PriorityMedium) >= PriorityRank(PriorityLow) {
		t.Error("expected Medium to rank before Low")
	}
	if PriorityRank(Priority("other")) <= PriorityRank(PriorityLow) {
		t.Error("expected unknown priorities to rank last")
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"completed", StatusCompleted},
		{"  PENDING ", StatusPending},
		{"Done", Status("Done")},
		{"", Status("")},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.input); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"high", PriorityHigh},
		{"Medium", PriorityMedium},
		{" low", PriorityLow},
		{"p0", Priority("p0")},
	}

	for _, tt := range tests {
		if got := NormalizePriority(tt.input); got != tt.want {
			t.Errorf("NormalizePriority(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
