// Package main implements the tl CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/internal/validation"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tl",
	Short: "tl - an in-memory to-do list",
	Long: `tl keeps an in-memory to-do list for the length of one session.

Run without a subcommand to open the numbered menu, or use "tl shell"
for a command prompt. Tasks are not saved when the session ends.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runMenu,
	SilenceUsage:      true,
}

var (
	rootVerbose bool
	rootColor   string

	// loadedConfig is set by loadConfig before any command runs.
	loadedConfig *config.Config
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log each recorded action to stderr")
	rootCmd.PersistentFlags().StringVar(&rootColor, "color", "", "Colour output: "+validation.FormatValidValues(config.ValidColors())+" (default from config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("color") {
		cfg.Display.Color = rootColor
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ui.SetColorMode(cfg.Display.Color)
	loadedConfig = cfg
	return nil
}
