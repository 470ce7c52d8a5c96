// Package config handles loading tasklist.toml configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/internal/validation"
	"github.com/amonks/tasklist/task"
)

// Color modes for Display.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrInvalidColor is returned when display.color is not a known mode.
	ErrInvalidColor = errors.New("invalid display.color")

	// ErrInvalidWidth is returned when display.width is negative.
	ErrInvalidWidth = errors.New("invalid display.width")

	// ErrInvalidPriority is returned when defaults.priority is not a
	// conventional priority.
	ErrInvalidPriority = errors.New("invalid defaults.priority")
)

// ValidColors returns the accepted display.color values.
func ValidColors() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

// Config represents the tasklist configuration.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Display  Display  `toml:"display"`
	Menu     Menu     `toml:"menu"`
}

// Defaults contains values used when the user leaves a prompt blank.
type Defaults struct {
	// Priority is used for new tasks added without a priority.
	Priority string `toml:"priority"`

	// Category is used for new tasks added without a category.
	Category string `toml:"category"`
}

// Display contains output-related configuration.
type Display struct {
	// Color is one of auto, always or never.
	Color string `toml:"color"`

	// Width is the wrap width for descriptions. Zero means the terminal
	// width, falling back to 80 columns.
	Width int `toml:"width"`
}

// Menu contains interactive menu configuration.
type Menu struct {
	// ConfirmExit asks for confirmation before leaving the menu.
	ConfirmExit bool `toml:"confirm-exit"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Defaults: Defaults{Priority: "Medium"},
		Display:  Display{Color: ColorAuto},
		Menu:     Menu{ConfirmExit: true},
	}
}

// Load loads configuration from the global config file and from
// tasklist.toml in dir. Project values win over global values, which win
// over Default.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, paths.ProjectConfigFile))
	if err != nil {
		return nil, err
	}

	merged := Default()
	mergeLayer(merged, globalCfg, globalMeta)
	mergeLayer(merged, projectCfg, projectMeta)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

// mergeLayer copies every key defined in meta from layer into dst.
func mergeLayer(dst, layer *Config, meta toml.MetaData) {
	if meta.IsDefined("defaults", "priority") {
		dst.Defaults.Priority = strings.TrimSpace(layer.Defaults.Priority)
	}
	if meta.IsDefined("defaults", "category") {
		dst.Defaults.Category = strings.TrimSpace(layer.Defaults.Category)
	}
	if meta.IsDefined("display", "color") {
		dst.Display.Color = strings.ToLower(strings.TrimSpace(layer.Display.Color))
	}
	if meta.IsDefined("display", "width") {
		dst.Display.Width = layer.Display.Width
	}
	if meta.IsDefined("menu", "confirm-exit") {
		dst.Menu.ConfirmExit = layer.Menu.ConfirmExit
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return validation.FormatInvalidValueError(ErrInvalidColor, c.Display.Color, ValidColors())
	}
	if c.Defaults.Priority != "" {
		if priority := task.NormalizePriority(c.Defaults.Priority); !priority.IsValid() {
			return validation.FormatInvalidValueError(ErrInvalidPriority, priority, task.ValidPriorities())
		}
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("%w: %d must not be negative", ErrInvalidWidth, c.Display.Width)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
