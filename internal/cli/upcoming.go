package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
)

type upcomingJSON struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Type      models.EventType `json:"type"`
	Start     string           `json:"start"`
	End       string           `json:"end"`
	Until     string           `json:"until"`
	Now       bool             `json:"now"`
	Location  string           `json:"location,omitempty"`
	Attendees int              `json:"attendees"`
}

func newUpcomingCmd(opts *rootOptions) *cobra.Command {
	var (
		limit   int
		nowFlag string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List events that have not finished yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = opts.cfg.TUI.UpcomingLimit
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}
			ds, err := opts.loadDataset(cmd.Context(), now)
			if err != nil {
				return err
			}

			events := timeline.Upcoming(ds.Events, now, limit)
			out := cmd.OutOrStdout()
			if asJSON {
				items := make([]upcomingJSON, 0, len(events))
				for _, event := range events {
					items = append(items, upcomingJSON{
						ID:        event.ID,
						Title:     event.Title,
						Type:      event.EventType,
						Start:     event.StartTime.In(now.Location()).Format(time.RFC3339),
						End:       event.EndTime.In(now.Location()).Format(time.RFC3339),
						Until:     timeline.TimeUntil(event, now),
						Now:       timeline.IsNow(event, now),
						Location:  event.Location,
						Attendees: len(event.Attendees),
					})
				}
				return writeJSON(out, items)
			}

			if len(events) == 0 {
				_, err := fmt.Fprintln(out, "No upcoming events")
				return err
			}
			tbl := newTable("WHEN", "TIME", "TYPE", "TITLE", "LOCATION").
				clip(3, textColumnWidth).
				clip(4, textColumnWidth/2)
			for _, event := range events {
				tbl.add(
					timeline.TimeUntil(event, now),
					eventSpan(event, now.Location()),
					string(event.EventType),
					event.Title,
					event.Location,
				)
			}
			return tbl.write(out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", timeline.DefaultUpcomingLimit, "maximum events")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time (RFC3339)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}
