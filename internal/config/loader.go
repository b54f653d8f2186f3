package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. FLOWSTATE_TUI_THEME.
const envPrefix = "FLOWSTATE"

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
	overridden map[string]bool
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:          viper.New(),
		overridden: make(map[string]bool),
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// Load loads configuration with proper precedence:
// defaults < config file < env vars < explicit Set calls (CLI flags)
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	l.setupViper(cfg)

	if err := l.loadConfigFile(); err != nil {
		// Config file is optional, only error if explicitly specified
		if l.configFile != "" {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Unmarshal does not split list-valued env vars.
	l.applyEnvOverrides(cfg)

	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// expandTilde expands ~ to the user's home directory.
func expandTilde(path string) string {
	if path == "" {
		return path
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// expandPaths expands ~ in all path-related config fields.
func expandPaths(cfg *Config) {
	cfg.Global.StateDir = expandTilde(cfg.Global.StateDir)
	cfg.Logging.File = expandTilde(cfg.Logging.File)
	for _, paths := range [][]string{cfg.Data.Fixtures, cfg.Data.ICS, cfg.Data.Mbox} {
		for i := range paths {
			paths[i] = expandTilde(paths[i])
		}
	}
}

// setupViper configures Viper with defaults and environment bindings.
func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "flowstate"))
	}

	homeDir, _ := os.UserHomeDir()
	if homeDir != "" {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "flowstate"))
	}

	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.setDefaults(cfg)

	// Explicitly bind environment variables (Viper's Unmarshal has issues without this)
	bindEnvVars(v)

	v.AutomaticEnv()
}

// setDefaults sets all default values in Viper.
func (l *Loader) setDefaults(cfg *Config) {
	v := l.v

	// Global
	v.SetDefault("global.state_dir", cfg.Global.StateDir)

	// Logging
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.enable_caller", cfg.Logging.EnableCaller)

	// TUI
	v.SetDefault("tui.theme", cfg.TUI.Theme)
	v.SetDefault("tui.refresh_interval", cfg.TUI.RefreshInterval)
	v.SetDefault("tui.upcoming_limit", cfg.TUI.UpcomingLimit)
	v.SetDefault("tui.focus_mode", cfg.TUI.FocusMode)
	v.SetDefault("tui.sidebar_collapsed", cfg.TUI.SidebarCollapsed)
	v.SetDefault("tui.view", cfg.TUI.View)

	// Data
	v.SetDefault("data.builtin", cfg.Data.Builtin)
	v.SetDefault("data.fixtures", cfg.Data.Fixtures)
	v.SetDefault("data.ics", cfg.Data.ICS)
	v.SetDefault("data.mbox", cfg.Data.Mbox)
	v.SetDefault("data.strict", cfg.Data.Strict)
}

// loadConfigFile attempts to load the configuration file.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// ConfigFileUsed returns the config file that was loaded.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Set overrides a key above every other source. CLI flags use this.
func (l *Loader) Set(key string, value interface{}) {
	l.overridden[key] = true
	l.v.Set(key, value)
}

// IsOverridden reports whether key was pinned for this run by Set or by its
// FLOWSTATE_* variable. Saved TUI preferences yield to such keys but not to
// the config file.
func (l *Loader) IsOverridden(key string) bool {
	if l.overridden[key] {
		return true
	}
	_, ok := os.LookupEnv(EnvVar(key))
	return ok
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	loader := NewLoader()
	loader.SetConfigFile(path)
	return loader.Load()
}

// LoadDefault loads configuration with default search paths.
func LoadDefault() (*Config, error) {
	loader := NewLoader()
	return loader.Load()
}

// envBindings lists every key that FLOWSTATE_* variables may override.
var envBindings = []string{
	// Global
	"global.state_dir",
	// Logging
	"logging.level",
	"logging.format",
	"logging.file",
	"logging.enable_caller",
	// TUI
	"tui.theme",
	"tui.refresh_interval",
	"tui.upcoming_limit",
	"tui.focus_mode",
	"tui.sidebar_collapsed",
	"tui.view",
	// Data
	"data.builtin",
	"data.fixtures",
	"data.ics",
	"data.mbox",
	"data.strict",
}

// listKeys hold comma-separated paths when set from the environment.
var listKeys = []string{"data.fixtures", "data.ics", "data.mbox"}

// EnvVar returns the environment variable bound to key, e.g. tui.theme -> FLOWSTATE_TUI_THEME.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bindEnvVars binds environment variables for config keys.
func bindEnvVars(v *viper.Viper) {
	for _, key := range envBindings {
		_ = v.BindEnv(key, EnvVar(key))
	}
}

// applyEnvOverrides splits comma-separated list variables, which Unmarshal
// would otherwise decode as a single path.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	for _, key := range listKeys {
		raw, ok := os.LookupEnv(EnvVar(key))
		if !ok {
			continue
		}
		if l.overridden[key] {
			continue
		}
		paths := splitList(raw)
		switch key {
		case "data.fixtures":
			cfg.Data.Fixtures = paths
		case "data.ics":
			cfg.Data.ICS = paths
		case "data.mbox":
			cfg.Data.Mbox = paths
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
