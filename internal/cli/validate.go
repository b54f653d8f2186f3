package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/fixtures"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check configured fixtures and report invalid records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadOpts := opts.fixtureOptions(false)
			// Collect every rejection instead of stopping at the first.
			loadOpts.Strict = false
			_, report, err := fixtures.Load(cmd.Context(), loadOpts, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pp := newPrinter(out)
			fmt.Fprintf(out, "Sources: %d\n", len(report.Sources))
			for _, source := range report.Sources {
				fmt.Fprintf(out, "  %s\n", source)
			}
			fmt.Fprintf(out, "Emails: %d  Events: %d  Tasks: %d\n", report.Emails, report.Events, report.Tasks)
			if len(report.Rejected) == 0 {
				return pp.Goodln("OK")
			}

			tbl := newTable("SOURCE", "KIND", "ID", "ERROR").clip(3, textColumnWidth)
			for _, r := range report.Rejected {
				tbl.add(r.Source, string(r.Kind), r.ID, r.Err.Error())
			}
			if err := pp.Badf("Rejected: %d\n", len(report.Rejected)); err != nil {
				return err
			}
			if err := tbl.write(out); err != nil {
				return err
			}
			return &ExitError{
				Code:    1,
				Err:     fmt.Errorf("%d invalid records", len(report.Rejected)),
				Printed: true,
			}
		},
	}
}
