package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
)

const (
	itemTimeLayout = "15:04"
	itemDayLayout  = "2006-01-02"
)

type timelineGroupJSON struct {
	Label string             `json:"label"`
	Day   string             `json:"day"`
	Items []timelineItemJSON `json:"items"`
}

type timelineItemJSON struct {
	Kind     models.ItemKind `json:"kind"`
	ID       string          `json:"id"`
	Time     time.Time       `json:"time"`
	Title    string          `json:"title"`
	Detail   string          `json:"detail,omitempty"`
	Priority string          `json:"priority,omitempty"`
}

func newTimelineCmd(opts *rootOptions) *cobra.Command {
	var (
		focus   bool
		nowFlag string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Print the day-grouped timeline",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("focus") {
				focus = opts.cfg.TUI.FocusMode
			}
			ds, err := opts.loadDataset(cmd.Context(), now)
			if err != nil {
				return err
			}

			groups := timeline.Aggregate(ds.Emails, ds.Events, focus, now)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, timelineJSON(groups, now.Location()))
			}
			return writeTimeline(out, groups, focus, now.Location())
		},
	}
	cmd.Flags().BoolVar(&focus, "focus", false, "only starred and high-priority mail")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time (RFC3339)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func timelineJSON(groups []timeline.Group, loc *time.Location) []timelineGroupJSON {
	out := make([]timelineGroupJSON, 0, len(groups))
	for _, group := range groups {
		items := make([]timelineItemJSON, 0, len(group.Items))
		for _, item := range group.Items {
			items = append(items, itemJSON(item, loc))
		}
		out = append(out, timelineGroupJSON{
			Label: group.Label,
			Day:   group.Day.Format(itemDayLayout),
			Items: items,
		})
	}
	return out
}

func itemJSON(item models.TimelineItem, loc *time.Location) timelineItemJSON {
	out := timelineItemJSON{
		Kind: item.Kind(),
		ID:   item.ItemID(),
		Time: item.PrimaryInstant(),
	}
	switch it := item.(type) {
	case *models.EmailThread:
		out.Title = it.Subject
		out.Detail = it.From.DisplayName()
		out.Priority = string(it.Priority)
	case *models.CalendarEvent:
		out.Title = it.Title
		out.Detail = eventSpan(it, loc)
	}
	return out
}

func writeTimeline(out io.Writer, groups []timeline.Group, focus bool, loc *time.Location) error {
	pp := newPrinter(out)
	if len(groups) == 0 {
		return pp.Faintln(timeline.EmptyMessage(focus))
	}
	for i, group := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := pp.TitleWithCount(group.Label, len(group.Items)); err != nil {
			return err
		}
		// Subject or title is the last column.
		tbl := newTable().clip(5, textColumnWidth)
		for _, item := range group.Items {
			tbl.add(timelineRow(item, loc)...)
		}
		if err := tbl.write(out); err != nil {
			return err
		}
	}
	return nil
}

func timelineRow(item models.TimelineItem, loc *time.Location) []string {
	at := item.PrimaryInstant().In(loc).Format(itemTimeLayout)
	switch it := item.(type) {
	case *models.EmailThread:
		flags := ""
		if !it.IsRead {
			flags += "●"
		}
		if it.IsStarred {
			flags += "★"
		}
		return []string{"  " + at, "mail", flags, string(it.Priority), it.From.DisplayName(), it.Subject}
	case *models.CalendarEvent:
		return []string{"  " + at, "event", "", string(it.EventType), eventSpan(it, loc), it.Title}
	default:
		return []string{"  " + at, string(item.Kind()), "", "", "", item.ItemID()}
	}
}

func eventSpan(event *models.CalendarEvent, loc *time.Location) string {
	if event.IsAllDay {
		return "all day"
	}
	return fmt.Sprintf("%s-%s (%dm)",
		event.StartTime.In(loc).Format(itemTimeLayout),
		event.EndTime.In(loc).Format(itemTimeLayout),
		event.DurationMinutes())
}
