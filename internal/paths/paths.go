package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnvVar names an explicit config file that replaces the global one.
const ConfigEnvVar = "TASKLIST_CONFIG"

// ProjectConfigFile is the per-directory config file name.
const ProjectConfigFile = "tasklist.toml"

// DefaultConfigDir returns the default tasklist config directory.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tasklist"), nil
}

// GlobalConfigPath returns the global config file path. TASKLIST_CONFIG
// overrides the default location.
func GlobalConfigPath() (string, error) {
	if override := os.Getenv(ConfigEnvVar); override != "" {
		return override, nil
	}

	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}
