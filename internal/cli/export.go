package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/fixtures"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		nowFlag string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded dataset as a YAML fixture file",
		Long:  "Export merges every configured source (builtin, fixtures, .ics, mbox) into one YAML fixture that --fixtures can load back.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}
			ds, err := opts.loadDataset(cmd.Context(), now)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer file.Close()
				out = file
			}
			if err := fixtures.WriteYAML(out, ds); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "anchor time for the builtin data (RFC3339)")
	return cmd
}

