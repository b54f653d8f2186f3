package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/fixtures"
	"github.com/tOgg1/flowstate/internal/logging"
	"github.com/tOgg1/flowstate/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	if !hasTTY() {
		return &ExitError{
			Code: 2,
			Err:  errors.New("the TUI needs an interactive terminal; try `flowstate timeline` instead"),
		}
	}
	cfg := opts.cfg

	// Logging to stderr would corrupt the alternate screen.
	closer, err := logging.OpenFile(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.EnableCaller,
	}, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	statePath := ""
	if err := cfg.EnsureDirectories(); err != nil {
		logger := logging.Component("cli")
		logger.Warn().Err(err).Msg("preferences disabled")
	} else {
		statePath = cfg.StatePath()
	}

	ds, err := opts.loadDataset(cmd.Context(), time.Now())
	if err != nil {
		return err
	}

	return tui.Run(opts.tuiConfig(ds, statePath))
}

// tuiConfig maps the resolved configuration onto the TUI. Keys pinned by a
// flag or environment variable win over saved preferences.
func (o *rootOptions) tuiConfig(ds fixtures.Dataset, statePath string) tui.Config {
	cfg := o.cfg
	return tui.Config{
		Data:             ds,
		Theme:            cfg.TUI.Theme,
		ThemeExplicit:    o.loader.IsOverridden("tui.theme"),
		RefreshInterval:  cfg.TUI.RefreshInterval,
		UpcomingLimit:    cfg.TUI.UpcomingLimit,
		FocusMode:        cfg.TUI.FocusMode,
		SidebarCollapsed: cfg.TUI.SidebarCollapsed,
		SidebarExplicit:  o.loader.IsOverridden("tui.sidebar_collapsed"),
		View:             cfg.TUI.View,
		StatePath:        statePath,
	}
}
