// Package config handles flowstate configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Theme names accepted by tui.theme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Config is the root configuration structure for flowstate.
type Config struct {
	// Global settings
	Global GlobalConfig `yaml:"global" mapstructure:"global"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// TUI settings
	TUI TUIConfig `yaml:"tui" mapstructure:"tui"`

	// Data sources
	Data DataConfig `yaml:"data" mapstructure:"data"`
}

// GlobalConfig contains global settings.
type GlobalConfig struct {
	// StateDir holds the preferences file (default: ~/.local/state/flowstate).
	StateDir string `yaml:"state_dir" mapstructure:"state_dir"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is where the TUI writes logs. Empty discards them while the TUI runs.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// TUIConfig contains TUI settings.
type TUIConfig struct {
	// Theme is light, dark or system.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// RefreshInterval is how often relative labels are recomputed.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// UpcomingLimit caps the upcoming events list.
	UpcomingLimit int `yaml:"upcoming_limit" mapstructure:"upcoming_limit"`

	// FocusMode starts the timeline filtered to priority items.
	FocusMode bool `yaml:"focus_mode" mapstructure:"focus_mode"`

	// SidebarCollapsed starts with the narrow sidebar.
	SidebarCollapsed bool `yaml:"sidebar_collapsed" mapstructure:"sidebar_collapsed"`

	// View is the initial sidebar view (inbox, today, starred, ...). Empty
	// restores the last view, falling back to inbox.
	View string `yaml:"view" mapstructure:"view"`
}

// DataConfig selects the mail and calendar sources.
type DataConfig struct {
	// Builtin includes the generated demo data.
	Builtin bool `yaml:"builtin" mapstructure:"builtin"`

	// Fixtures are YAML or JSON fixture files.
	Fixtures []string `yaml:"fixtures" mapstructure:"fixtures"`

	// ICS are iCalendar files.
	ICS []string `yaml:"ics" mapstructure:"ics"`

	// Mbox are mbox archives.
	Mbox []string `yaml:"mbox" mapstructure:"mbox"`

	// Strict fails loading on the first invalid record.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Global: GlobalConfig{
			StateDir: filepath.Join(homeDir, ".local", "state", "flowstate"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		TUI: TUIConfig{
			Theme:           ThemeSystem,
			RefreshInterval: time.Minute,
			UpcomingLimit:   4,
		},
		Data: DataConfig{
			Builtin: true,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.TUI.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("tui.theme must be one of light, dark, system (got %q)", c.TUI.Theme)
	}

	if c.TUI.RefreshInterval < time.Second {
		return fmt.Errorf("tui.refresh_interval must be at least 1s")
	}

	if c.TUI.UpcomingLimit < 1 {
		return fmt.Errorf("tui.upcoming_limit must be at least 1")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}

// EnsureDirectories creates required directories.
func (c *Config) EnsureDirectories() error {
	if c.Global.StateDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Global.StateDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Global.StateDir, err)
	}
	return nil
}

// StatePath returns the preferences file path, or "" when no state dir is set.
func (c *Config) StatePath() string {
	if c.Global.StateDir == "" {
		return ""
	}
	return filepath.Join(c.Global.StateDir, "preferences.json")
}
