package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/calendar"
)

func newCalendarCmd(opts *rootOptions) *cobra.Command {
	var (
		month   string
		nowFlag string
	)
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month grid with event days marked",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}
			target := calendar.FirstOfMonth(now)
			if month != "" {
				target, err = calendar.ParseMonth(month, now.Location())
				if err != nil {
					return err
				}
			}
			ds, err := opts.loadDataset(cmd.Context(), now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderOpts := calendar.DefaultOptions()
			if !isTerminal(out) {
				renderOpts = plainCalendarOptions()
			}
			weeks := calendar.Weeks(target, time.Time{}, now, calendar.EventDays(ds.Events, now.Location()))
			_, err = fmt.Fprintf(out, "%s\n%s\n", calendar.Title(target), calendar.Render(weeks, renderOpts))
			return err
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to show (2024-03 or \"March 2024\")")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time (RFC3339)")
	return cmd
}

func plainCalendarOptions() calendar.Options {
	plain := lipgloss.NewStyle()
	return calendar.Options{
		HeaderStyle:   plain,
		DayStyle:      plain,
		OutsideStyle:  plain,
		EventStyle:    plain,
		TodayStyle:    plain,
		SelectedStyle: plain,
		ShowHeader:    true,
	}
}
