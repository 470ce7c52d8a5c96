package main

import (
	"fmt"

	"github.com/amonks/tasklist/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = config.Default()
	}

	encoded, err := cfg.Encode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), encoded)
	return err
}
