package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpShellCmd = &cobra.Command{
	Use:   "shell-commands",
	Short: "List the commands understood by tl shell",
	Args:  cobra.NoArgs,
	RunE:  runHelpShellCommands,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpShellCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpShellCommands(cmd *cobra.Command, args []string) error {
	var builder strings.Builder
	for _, sub := range newShellRoot(nil).Commands() {
		if sub.Hidden {
			continue
		}
		fmt.Fprintf(&builder, "%-28s %s\n", sub.Use, sub.Short)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), builder.String())
	return err
}
