package timeline

import (
	"sort"
	"time"

	"github.com/tOgg1/flowstate/internal/models"
)

// DayGroup is a calendar-day bucket of items.
type DayGroup struct {
	// Day is local midnight of the bucket.
	Day   time.Time
	Items []models.TimelineItem
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// GroupByDay partitions items by the local day of their primary instant.
// Groups come back newest day first, items newest first. Items sharing an
// instant keep their input order.
func GroupByDay(items []models.TimelineItem, loc *time.Location) []DayGroup {
	if len(items) == 0 {
		return nil
	}

	byDay := make(map[int64]int, len(items))
	groups := make([]DayGroup, 0)
	for _, item := range items {
		if item == nil {
			continue
		}
		day := StartOfDay(item.PrimaryInstant(), loc)
		key := day.Unix()
		idx, ok := byDay[key]
		if !ok {
			idx = len(groups)
			byDay[key] = idx
			groups = append(groups, DayGroup{Day: day})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	for i := range groups {
		sortItemsDesc(groups[i].Items)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}

func sortItemsDesc(items []models.TimelineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PrimaryInstant().After(items[j].PrimaryInstant())
	})
}
