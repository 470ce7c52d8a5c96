package main

import (
	"github.com/amonks/tasklist/internal/tasktui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit tasks in a full-screen view",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	defer s.close()

	return tasktui.Run(cmd.Context(), s.tracker, tasktui.Options{
		DefaultPriority: s.defaultPriority(""),
		DefaultCategory: s.defaultCategory(""),
		Input:           cmd.InOrStdin(),
		Output:          cmd.OutOrStdout(),
	})
}
