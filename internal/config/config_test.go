package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	require.Equal(t, ThemeSystem, cfg.TUI.Theme)
	require.Equal(t, time.Minute, cfg.TUI.RefreshInterval)
	require.Equal(t, 4, cfg.TUI.UpcomingLimit)
	require.Empty(t, cfg.TUI.View)
	require.True(t, cfg.Data.Builtin)
	require.False(t, cfg.Data.Strict)
	require.Equal(t, filepath.Join(dir, ".local", "state", "flowstate", "preferences.json"), cfg.StatePath())
}

func TestLoad_FileThenEnvThenSet(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "xdg", "flowstate")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(`
tui:
  theme: dark
  refresh_interval: 30s
  upcoming_limit: 6
  focus_mode: true
data:
  builtin: false
  ics:
    - ~/cal/work.ics
logging:
  level: debug
`), 0o644))

	t.Setenv("FLOWSTATE_TUI_UPCOMING_LIMIT", "8")
	t.Setenv("FLOWSTATE_DATA_MBOX", "a.mbox, b.mbox")

	loader := NewLoader()
	loader.Set("tui.theme", "light")
	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfgDir, "config.yaml"), loader.ConfigFileUsed())

	require.Equal(t, "light", cfg.TUI.Theme)
	require.Equal(t, 30*time.Second, cfg.TUI.RefreshInterval)
	require.Equal(t, 8, cfg.TUI.UpcomingLimit)
	require.True(t, cfg.TUI.FocusMode)
	require.False(t, cfg.Data.Builtin)
	require.Equal(t, []string{filepath.Join(dir, "cal", "work.ics")}, cfg.Data.ICS)
	require.Equal(t, []string{"a.mbox", "b.mbox"}, cfg.Data.Mbox)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestIsOverridden(t *testing.T) {
	isolate(t)
	t.Setenv("FLOWSTATE_TUI_SIDEBAR_COLLAPSED", "true")

	loader := NewLoader()
	loader.Set("tui.theme", "light")
	_, err := loader.Load()
	require.NoError(t, err)

	require.True(t, loader.IsOverridden("tui.theme"))
	require.True(t, loader.IsOverridden("tui.sidebar_collapsed"))
	require.False(t, loader.IsOverridden("tui.view"))
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized" }, "tui.theme"},
		{"fast refresh", func(c *Config) { c.TUI.RefreshInterval = 500 * time.Millisecond }, "tui.refresh_interval"},
		{"zero upcoming", func(c *Config) { c.TUI.UpcomingLimit = 0 }, "tui.upcoming_limit"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestEnvVar(t *testing.T) {
	require.Equal(t, "FLOWSTATE_TUI_THEME", EnvVar("tui.theme"))
	require.Equal(t, "FLOWSTATE_DATA_ICS", EnvVar("data.ics"))
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, home, expandTilde("~"))
	require.Equal(t, filepath.Join(home, "x"), expandTilde("~/x"))
	require.Equal(t, "/abs", expandTilde("/abs"))
	require.Equal(t, "", expandTilde(""))
}
