// Package cli implements the flowstate command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/config"
	"github.com/tOgg1/flowstate/internal/fixtures"
	"github.com/tOgg1/flowstate/internal/logging"
)

// ExitError carries a process exit code. Printed is set when the command
// already reported the failure.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// rootOptions holds global flag values and the configuration they resolve to.
type rootOptions struct {
	configFile string
	logLevel   string
	theme      string
	fixtures   []string
	ics        []string
	mbox       []string
	noBuiltin  bool

	cfg    *config.Config
	loader *config.Loader
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "flowstate",
		Short:         "Focus timeline for mail and calendar",
		Long:          "flowstate merges email threads and calendar events into one day-grouped timeline.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/flowstate/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.theme, "theme", "", "theme: light, dark or system")
	flags.StringSliceVar(&opts.fixtures, "fixtures", nil, "YAML or JSON fixture files")
	flags.StringSliceVar(&opts.ics, "ics", nil, "iCalendar files to import")
	flags.StringSliceVar(&opts.mbox, "mbox", nil, "mbox archives to import")
	flags.BoolVar(&opts.noBuiltin, "no-builtin", false, "skip the built-in demo data")

	cmd.AddCommand(
		newTUICmd(opts),
		newTimelineCmd(opts),
		newUpcomingCmd(opts),
		newCalendarCmd(opts),
		newValidateCmd(opts),
		newExportCmd(opts),
	)

	return cmd
}

// load resolves configuration: defaults < file < FLOWSTATE_* env < flags.
func (o *rootOptions) load(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if o.configFile != "" {
		loader.SetConfigFile(o.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loader.Set("logging.level", o.logLevel)
	}
	if flags.Changed("theme") {
		loader.Set("tui.theme", o.theme)
	}
	if flags.Changed("fixtures") {
		loader.Set("data.fixtures", o.fixtures)
	}
	if flags.Changed("ics") {
		loader.Set("data.ics", o.ics)
	}
	if flags.Changed("mbox") {
		loader.Set("data.mbox", o.mbox)
	}
	if flags.Changed("no-builtin") {
		loader.Set("data.builtin", !o.noBuiltin)
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.loader = loader

	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		Output:       os.Stderr,
		EnableCaller: cfg.Logging.EnableCaller,
	})
	if used := loader.ConfigFileUsed(); used != "" {
		logger := logging.Component("cli")
		logger.Debug().Str("file", used).Msg("config loaded")
	}
	return nil
}

func (o *rootOptions) fixtureOptions(strict bool) fixtures.Options {
	return fixtures.Options{
		Builtin: o.cfg.Data.Builtin,
		Files:   o.cfg.Data.Fixtures,
		ICS:     o.cfg.Data.ICS,
		Mbox:    o.cfg.Data.Mbox,
		Strict:  strict || o.cfg.Data.Strict,
	}
}

func (o *rootOptions) loadDataset(ctx context.Context, now time.Time) (fixtures.Dataset, error) {
	ds, report, err := fixtures.Load(ctx, o.fixtureOptions(false), now)
	if err != nil {
		return fixtures.Dataset{}, err
	}
	logger := logging.Component("cli")
	logger.Debug().
		Strs("sources", report.Sources).
		Int("emails", report.Emails).
		Int("events", report.Events).
		Int("rejected", len(report.Rejected)).
		Msg("dataset loaded")
	return ds, nil
}
