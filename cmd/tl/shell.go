package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tasklist/history"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/internal/validation"
	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read tl commands line by line",
	Long: `Read tl commands from standard input, one per line.

Arguments are split with shell-style quoting, so names containing spaces
must be quoted: add "Buy milk" --priority high. Run "tl help shell-commands"
for the list of commands. Lines starting with # are ignored.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var shellFailFast bool

func init() {
	shellCmd.Flags().BoolVar(&shellFailFast, "fail-fast", false, "Exit with status 1 on the first failing command")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	defer s.close()

	prompt := ""
	if s.interactive {
		prompt = "tl> "
	}

	for {
		line, err := s.input.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.runShellLine(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.failure(failureMessage(err))
			if shellFailFast {
				return &exitError{code: 1, err: err}
			}
		}
	}
}

// runShellLine executes one shell line. Blank lines and comments are no-ops.
func (s *session) runShellLine(line string) error {
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := internalstrings.SplitCommandLine(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	root := newShellRoot(s)
	root.SetArgs(args)
	root.SetOut(s.out)
	root.SetErr(s.errOut)
	return root.Execute()
}

// newShellRoot builds a fresh command tree bound to s, so that flag values
// never leak from one line into the next.
func newShellRoot(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "tl>",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newShellAddCmd(s),
		newShellDeleteCmd(s),
		newShellEditCmd(s),
		newShellDoneCmd(s),
		newShellSearchCmd(s),
		newShellShowCmd(s),
		newShellFilterCmd(s),
		newShellListCmd(s),
		newShellReverseCmd(s),
		newShellSummaryCmd(s),
		newShellHistoryCmd(s),
		&cobra.Command{
			Use:     "exit",
			Aliases: []string{"quit"},
			Short:   "Leave the shell",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return errQuit
			},
		},
	)
	return root
}

func validPriorities() string {
	return validation.FormatValidValues(task.ValidPriorities())
}

func newShellAddCmd(s *session) *cobra.Command {
	var description, priority, category string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a pending task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created := s.tracker.Add(args[0], description, s.defaultPriority(priority), s.defaultCategory(category))
			if asJSON {
				return encodeJSON(s.out, created)
			}
			s.success("Task added successfully!")
			s.printf("ID: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Task priority ("+validPriorities()+")")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Task category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the new task as JSON")
	addTaskFlagAliases(cmd)
	return cmd
}

func newShellDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete the first task with this name",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.tracker.Delete(args[0]); err != nil {
				return err
			}
			s.success("Task deleted successfully!")
			return nil
		},
	}
}

func newShellEditCmd(s *session) *cobra.Command {
	var description, priority string
	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Change the description or priority of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			current, ok := s.tracker.Lookup(name)
			if !ok {
				return fmt.Errorf("edit %q: %w", name, task.ErrTaskNotFound)
			}

			newDescription := current.Description
			if cmd.Flags().Changed("description") {
				newDescription = description
			}
			newPriority := current.Priority
			if cmd.Flags().Changed("priority") {
				newPriority = task.NormalizePriority(priority)
			}

			if err := s.tracker.Edit(name, newDescription, newPriority); err != nil {
				return err
			}
			s.success("Task updated successfully!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority ("+validPriorities()+")")
	addTaskFlagAliases(cmd)
	return cmd
}

func newShellDoneCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "done NAME",
		Aliases: []string{"mark"},
		Short:   "Mark the first task with this name as completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.tracker.Complete(args[0]); err != nil {
				return err
			}
			s.success("Task marked as completed!")
			return nil
		},
	}
}

func newShellSearchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search [KEYWORD]",
		Short: "Show the first task whose name contains KEYWORD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			found, ok := s.tracker.Search(keyword)
			if !ok {
				return fmt.Errorf("search %q: %w", keyword, task.ErrTaskNotFound)
			}
			s.printFound(found)
			return nil
		},
	}
}

func newShellShowCmd(s *session) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show NAME|ID",
		Short: "Show every field of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, ok := s.tracker.Get(args[0])
			if !ok {
				found, ok = s.tracker.Lookup(args[0])
			}
			if !ok {
				return fmt.Errorf("show %q: %w", args[0], task.ErrTaskNotFound)
			}
			if asJSON {
				return encodeJSON(s.out, found)
			}
			s.printTaskDetail(found)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the task as JSON")
	return cmd
}

func newShellFilterCmd(s *session) *cobra.Command {
	var status, priority, category, name string
	var asJSON, byPriority bool
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List tasks matching every given field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := task.ListFilter{NameSubstring: name}
			if cmd.Flags().Changed("status") {
				normalized := task.NormalizeStatus(status)
				if !normalized.IsValid() {
					return validation.FormatInvalidValueError(task.ErrInvalidStatus, normalized, task.ValidStatuses())
				}
				filter.Status = &normalized
			}
			if cmd.Flags().Changed("priority") {
				normalized := task.NormalizePriority(priority)
				filter.Priority = &normalized
			}
			if cmd.Flags().Changed("category") {
				filter.Category = &category
			}

			tasks := s.tracker.Filter(filter)
			if byPriority {
				task.SortByPriority(tasks)
			}
			if asJSON {
				return encodeJSON(s.out, tasks)
			}
			s.printTaskTable(tasks)
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Match status ("+validation.FormatValidValues(task.ValidStatuses())+")")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Match priority ("+validPriorities()+")")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Match category")
	cmd.Flags().StringVar(&name, "name", "", "Match a substring of the name")
	cmd.Flags().BoolVar(&byPriority, "by-priority", false, "Order tasks High, Medium, Low")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks as JSON")
	addTaskFlagAliases(cmd)
	return cmd
}

func newShellListCmd(s *session) *cobra.Command {
	var asJSON, byPriority bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every task in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := s.tracker.List()
			if byPriority {
				task.SortByPriority(tasks)
			}
			if asJSON {
				return encodeJSON(s.out, tasks)
			}
			s.printTaskTable(tasks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byPriority, "by-priority", false, "Order tasks High, Medium, Low")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks as JSON")
	return cmd
}

func newShellReverseCmd(s *session) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "List every task, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := s.tracker.Reverse()
			if asJSON {
				return encodeJSON(s.out, tasks)
			}
			s.printTaskTable(tasks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks as JSON")
	return cmd
}

func newShellSummaryCmd(s *session) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show task counts and the completion rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return encodeJSON(s.out, s.tracker.Summary())
			}
			s.printSummary()
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

func newShellHistoryCmd(s *session) *cobra.Command {
	var asJSON bool
	var kind string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded actions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := s.tracker.History()
			if cmd.Flags().Changed("type") {
				normalized := history.NormalizeActionType(kind)
				if !normalized.IsValid() {
					return validation.FormatInvalidValueError(history.ErrInvalidActionType, normalized, history.ValidActionTypes())
				}
				actions = actionsOfType(actions, normalized)
			}
			if asJSON {
				return encodeJSON(s.out, actions)
			}
			s.printActions(actions)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print actions as JSON")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Only show actions of this type ("+validation.FormatValidValues(history.ValidActionTypes())+")")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "peek",
			Short: "Show the most recent action",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				action, ok := s.tracker.LastAction()
				if !ok {
					s.failure("No action history!")
					return nil
				}
				s.printAction(action)
				return nil
			},
		},
		&cobra.Command{
			Use:   "pop",
			Short: "Forget the most recent action without undoing it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				action, ok := s.tracker.PopHistory()
				if !ok {
					s.failure("No action history!")
					return nil
				}
				s.success("Removed from history: " + action.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget every recorded action",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.tracker.ClearHistory()
				s.success("History cleared!")
				return nil
			},
		},
	)
	return cmd
}

func actionsOfType(actions []history.Action, kind history.ActionType) []history.Action {
	matched := make([]history.Action, 0, len(actions))
	for _, action := range actions {
		if action.Type == kind {
			matched = append(matched, action)
		}
	}
	return matched
}
