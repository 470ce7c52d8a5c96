package task

import "strings"

// NormalizeStatus maps input that matches a known status case-insensitively
// onto its canonical spelling. Other input is returned trimmed but otherwise
// verbatim.
func NormalizeStatus(input string) Status {
	input = strings.TrimSpace(input)
	for _, status := range ValidStatuses() {
		if strings.EqualFold(input, string(status)) {
			return status
		}
	}
	return Status(input)
}

// NormalizePriority maps input that matches a conventional priority
// case-insensitively onto its canonical spelling. Other input is returned
// trimmed but otherwise verbatim.
func NormalizePriority(input string) Priority {
	input = strings.TrimSpace(input)
	for _, priority := range ValidPriorities() {
		if strings.EqualFold(input, string(priority)) {
			return priority
		}
	}
	return Priority(input)
}
