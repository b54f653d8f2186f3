package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/tOgg1/flowstate/internal/models"
)

// DefaultUpcomingLimit is the number of events the side panel shows.
const DefaultUpcomingLimit = 4

const upcomingDateLayout = "Jan 2"

// Upcoming returns up to limit events that have not finished at now, sorted
// by start time ascending. Ongoing events are included. A non-positive limit
// falls back to DefaultUpcomingLimit.
func Upcoming(events []models.CalendarEvent, now time.Time, limit int) []*models.CalendarEvent {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	out := make([]*models.CalendarEvent, 0, len(events))
	for i := range events {
		event := &events[i]
		if event.StartTime.After(now) || event.EndTime.After(now) || event.StartTime.Equal(now) {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// IsNow reports whether the event is running at now. An event starting
// exactly at now counts as running.
func IsNow(event *models.CalendarEvent, now time.Time) bool {
	if event == nil {
		return false
	}
	if event.StartTime.After(now) {
		return false
	}
	return event.EndTime.After(now) || event.StartTime.Equal(now)
}

// TimeUntil renders the distance from now to the event start:
// "Now", "in 12m", "in 3h", or the start date.
func TimeUntil(event *models.CalendarEvent, now time.Time) string {
	if event == nil {
		return ""
	}
	if IsNow(event, now) {
		return "Now"
	}
	minutes := int(event.StartTime.Sub(now) / time.Minute)
	switch {
	case minutes < 0:
		return "Now"
	case minutes < 60:
		return fmt.Sprintf("in %dm", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("in %dh", minutes/60)
	default:
		return event.StartTime.In(now.Location()).Format(upcomingDateLayout)
	}
}
