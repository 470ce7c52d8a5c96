package main

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the numbered menu (default)",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// menuItems lists the main menu in display order; choice N runs item N-1.
var menuItems = []struct {
	label string
	run   func(*session) error
}{
	{"Add Task", (*session).menuAdd},
	{"Delete Task", (*session).menuDelete},
	{"Edit Task", (*session).menuEdit},
	{"Mark Task as Completed", (*session).menuMark},
	{"Search Task", (*session).menuSearch},
	{"Filter Tasks", (*session).menuFilter},
	{"Display All Tasks", func(s *session) error { s.printAllTasks(); return nil }},
	{"Display Tasks in Reverse", func(s *session) error { s.printReverse(); return nil }},
	{"Show Summary", func(s *session) error { s.printSummary(); return nil }},
	{"View Action History", func(s *session) error { s.printHistory(); return nil }},
}

// errQuit ends the menu loop.
var errQuit = errors.New("quit")

func runMenu(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	defer s.close()

	for {
		s.printMenu()
		choice, err := s.input.Prompt("\nEnter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.runMenuChoice(choice)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) printMenu() {
	s.println()
	s.println(s.styles.Heading.Render("====== TO-DO LIST ======"))
	for i, item := range menuItems {
		s.printf("%d. %s\n", i+1, item.label)
	}
	s.printf("%d. Exit\n", len(menuItems)+1)
	s.println(s.styles.Heading.Render("========================"))
}

func (s *session) runMenuChoice(choice string) error {
	n, err := strconv.Atoi(choice)
	switch {
	case err != nil || n < 1 || n > len(menuItems)+1:
		s.failure("Invalid choice! Please try again.")
		return nil
	case n == len(menuItems)+1:
		return s.menuExit()
	default:
		return menuItems[n-1].run(s)
	}
}

func (s *session) menuAdd() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Add New Task ---"))

	answers, err := s.promptAll(
		"Task Name: ",
		"Description: ",
		"Priority (High/Medium/Low): ",
		"Category (Work/Personal/Other): ",
	)
	if err != nil {
		return err
	}

	s.tracker.Add(answers[0], answers[1], s.defaultPriority(answers[2]), s.defaultCategory(answers[3]))
	s.success("Task added successfully!")
	return nil
}

func (s *session) menuDelete() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Delete Task ---"))
	if !s.printAllTasks() {
		return nil
	}

	name, err := s.input.Prompt("Enter task name to delete: ")
	if err != nil {
		return err
	}

	if err := s.tracker.Delete(name); err != nil {
		s.failure(failureMessage(err))
		return nil
	}
	s.success("Task deleted successfully!")
	return nil
}

func (s *session) menuEdit() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Edit Task ---"))
	if !s.printAllTasks() {
		return nil
	}

	answers, err := s.promptAll(
		"Enter task name to edit: ",
		"New description: ",
		"New priority (High/Medium/Low): ",
	)
	if err != nil {
		return err
	}

	if err := s.tracker.Edit(answers[0], answers[1], task.NormalizePriority(answers[2])); err != nil {
		s.failure(failureMessage(err))
		return nil
	}
	s.success("Task updated successfully!")
	return nil
}

func (s *session) menuMark() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Mark Task as Completed ---"))
	if !s.printAllTasks() {
		return nil
	}

	name, err := s.input.Prompt("Enter task name to mark as completed: ")
	if err != nil {
		return err
	}

	if err := s.tracker.Complete(name); err != nil {
		s.failure(failureMessage(err))
		return nil
	}
	s.success("Task marked as completed!")
	return nil
}

func (s *session) menuSearch() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Search Task ---"))

	keyword, err := s.input.Prompt("Enter task name to search: ")
	if err != nil {
		return err
	}

	found, ok := s.tracker.Search(keyword)
	if !ok {
		s.failure("Task not found!")
		return nil
	}
	s.printFound(found)
	return nil
}

func (s *session) menuFilter() error {
	s.println()
	s.println(s.styles.Heading.Render("--- Filter Tasks ---"))
	s.println("1. Filter by Status")
	s.println("2. Filter by Priority")

	choice, err := s.input.Prompt("Enter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		status, err := s.input.Prompt("Enter status (Pending/Completed): ")
		if err != nil {
			return err
		}
		normalized := task.NormalizeStatus(status)
		s.printf("\nTasks with status: %s\n", normalized)
		s.printFiltered(s.tracker.FilterByStatus(normalized))
	case "2":
		priority, err := s.input.Prompt("Enter priority (High/Medium/Low): ")
		if err != nil {
			return err
		}
		normalized := task.NormalizePriority(priority)
		s.println()
		s.println(s.styles.Banner("TASKS WITH " + string(normalized) + " PRIORITY"))
		s.printFiltered(s.tracker.FilterByPriority(normalized))
	default:
		s.failure("Invalid choice! Please try again.")
	}
	return nil
}

func (s *session) menuExit() error {
	if !s.cfg.Menu.ConfirmExit {
		s.println()
		s.println("Goodbye!")
		return errQuit
	}

	confirm, err := s.input.Prompt("\nAre you sure you want to exit? (yes/no): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "yes") && !strings.EqualFold(confirm, "y") {
		return nil
	}
	s.println()
	s.println("Thank you for using the to-do list!")
	return errQuit
}

// promptAll asks each prompt in turn and returns the answers in order.
func (s *session) promptAll(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		answer, err := s.input.Prompt(prompt)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
