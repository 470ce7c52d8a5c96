package main

import (
	"fmt"
	"strings"

	"github.com/amonks/tasklist/history"
	"github.com/amonks/tasklist/internal/markdown"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

const detailIndent = 3

// printAllTasks prints every task as a numbered block. It reports false when
// there are no tasks.
func (s *session) printAllTasks() bool {
	tasks := s.tracker.List()
	if len(tasks) == 0 {
		s.failure("No tasks yet!")
		return false
	}

	s.println()
	s.println(s.styles.Banner("ALL TASKS"))
	for i, t := range tasks {
		s.printf("%d. %s\n", i+1, t.Name)
		s.println(ui.WrapIndented("Description: "+t.Description, s.width, detailIndent))
		s.printf("   Priority: %s | Status: %s\n", t.Priority, t.Status)
		s.printf("   Category: %s\n", t.Category)
		s.println("---")
	}
	return true
}

// printReverse prints every task, newest first.
func (s *session) printReverse() {
	tasks := s.tracker.Reverse()
	if len(tasks) == 0 {
		s.failure("No tasks yet!")
		return
	}

	s.println()
	s.println(s.styles.Banner("TASKS IN REVERSE ORDER"))
	for _, t := range tasks {
		s.println(s.styles.BulletLine(t.Name + " - " + string(t.Status)))
	}
}

// printFiltered prints tasks as "name [priority] - status" bullets.
func (s *session) printFiltered(tasks []task.Task) {
	if len(tasks) == 0 {
		s.println(s.styles.Muted.Render("  No matching tasks."))
		return
	}
	for _, t := range tasks {
		s.println(s.styles.BulletLine(fmt.Sprintf("%s [%s] - %s", t.Name, t.Priority, t.Status)))
	}
}

// printFound prints the result of a search.
func (s *session) printFound(t task.Task) {
	s.success("Task Found!")
	s.printf("Name: %s\n", t.Name)
	s.printf("Description: %s\n", t.Description)
	s.printf("Priority: %s | Status: %s\n", t.Priority, t.Status)
	s.printf("Category: %s\n", t.Category)
}

// printSummary prints aggregate counts.
func (s *session) printSummary() {
	summary := s.tracker.Summary()

	s.println()
	s.println(s.styles.Banner("TASK SUMMARY"))
	s.printf("Total Tasks: %d\n", summary.Total)
	s.printf("Completed: %d\n", summary.Completed)
	s.printf("Pending: %d\n", summary.Pending)
	if summary.HasTasks() {
		s.printf("Completion Rate: %d%%\n", summary.CompletionRate)
	}
}

// printHistory prints recorded actions, most recent first.
func (s *session) printHistory() {
	s.printActions(s.tracker.History())
}

// printActions prints actions as a numbered list.
func (s *session) printActions(actions []history.Action) {
	if len(actions) == 0 {
		s.failure("No action history!")
		return
	}

	s.println()
	s.println(s.styles.Heading.Render("--- Action History (Most Recent First) ---"))
	for i, action := range actions {
		s.printf("%d. %s\n", i+1, action)
	}
}

// printAction prints a single history entry with its snapshot.
func (s *session) printAction(action history.Action) {
	s.printf("%s\n", action)
	details := action.Details()
	if details.Description != "" {
		s.printf("   Description: %s\n", details.Description)
	}
	if details.Priority != "" {
		s.printf("   Priority: %s\n", details.Priority)
	}
	if details.Category != "" {
		s.printf("   Category: %s\n", details.Category)
	}
}

// printTaskTable prints tasks as an aligned table.
func (s *session) printTaskTable(tasks []task.Task) {
	if len(tasks) == 0 {
		s.println("No tasks found.")
		return
	}
	s.printf("%s", formatTaskTable(tasks, s.styles, ui.HighlightID, s.now()))
}

// printTaskDetail prints every field of a task, rendering the description
// as markdown.
func (s *session) printTaskDetail(t task.Task) {
	label := func(name string) string {
		return s.styles.Label.Render(fmt.Sprintf("%-10s", name+":"))
	}
	s.printf("%s %s\n", label("ID"), t.ID)
	s.printf("%s %s\n", label("Name"), t.Name)
	s.printf("%s %s\n", label("Priority"), t.Priority)
	s.printf("%s %s\n", label("Status"), t.Status)
	s.printf("%s %s\n", label("Category"), t.Category)
	s.printf("%s %s\n", label("Created"), t.CreatedAt.Format("2006-01-02 15:04:05"))
	if t.CompletedAt != nil {
		s.printf("%s %s\n", label("Completed"), t.CompletedAt.Format("2006-01-02 15:04:05"))
	}

	description := markdown.Render(s.width, t.Description)
	if strings.TrimSpace(description) == "" {
		description = "-"
	}
	s.printf("\n%s\n%s\n", s.styles.Label.Render("Description:"), description)
}
