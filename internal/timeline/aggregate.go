// Package timeline turns mail and calendar fixtures into the day-grouped
// feed shown on the main screen, and selects upcoming events for the side
// panel.
package timeline

import (
	"time"

	"github.com/tOgg1/flowstate/internal/models"
)

const (
	emptyFocusMessage   = "No priority items. Enjoy your focus time!"
	emptyDefaultMessage = "All clear. Time to take a break."
)

// Group is one rendered day section.
type Group struct {
	Label string
	Day   time.Time
	Items []models.TimelineItem
}

// Aggregate runs the focus filter, groups by local day in now's location and
// labels each day relative to now. now is read once by the caller and held
// fixed for the whole pass.
func Aggregate(emails []models.EmailThread, events []models.CalendarEvent, focusMode bool, now time.Time) []Group {
	filtered := FocusFilter(emails, events, focusMode)
	return AggregateItems(filtered, now)
}

// AggregateItems groups and labels an already filtered item list.
func AggregateItems(items []models.TimelineItem, now time.Time) []Group {
	days := GroupByDay(items, now.Location())
	if len(days) == 0 {
		return nil
	}
	groups := make([]Group, 0, len(days))
	for _, day := range days {
		groups = append(groups, Group{
			Label: DayLabel(day.Day, now),
			Day:   day.Day,
			Items: day.Items,
		})
	}
	return groups
}

// Flatten returns the grouped items in display order.
func Flatten(groups []Group) []models.TimelineItem {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	out := make([]models.TimelineItem, 0, total)
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Count returns the number of items across groups.
func Count(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	return total
}

// EmptyMessage is the copy shown when a pass yields no groups.
func EmptyMessage(focusMode bool) string {
	if focusMode {
		return emptyFocusMessage
	}
	return emptyDefaultMessage
}
