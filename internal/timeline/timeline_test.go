package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/flowstate/internal/models"
)

func TestFocusFilterKeepsStarredAndHighSignalEmailsAndAllEvents(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	emails := []models.EmailThread{
		email("low", now, models.PriorityLow, false),
		email("normal", now, models.PriorityNormal, false),
		email("high", now, models.PriorityHigh, false),
		email("urgent", now, models.PriorityUrgent, false),
		email("starred", now, models.PriorityLow, true),
	}
	events := []models.CalendarEvent{event("standup", now, 15*time.Minute)}

	require.Equal(t, []string{"low", "normal", "high", "urgent", "starred", "standup"}, ids(FocusFilter(emails, events, false)))
	require.Equal(t, []string{"high", "urgent", "starred", "standup"}, ids(FocusFilter(emails, events, true)))
}

func TestFocusFilterDropsLinkedNormalEmail(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	linked := email("linked", now, models.PriorityNormal, false)
	linked.LinkedEvent = "standup"
	events := []models.CalendarEvent{event("standup", now, 15*time.Minute)}

	got := FocusFilter([]models.EmailThread{linked}, events, true)
	require.Equal(t, []string{"standup"}, ids(got))
}

func TestGroupByDaySortsGroupsAndItemsDescending(t *testing.T) {
	loc := time.UTC
	base := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	emails := []models.EmailThread{
		email("a", base.Add(9*time.Hour), models.PriorityNormal, false),
		email("b", base.Add(-2*time.Hour), models.PriorityNormal, false),
		email("c", base.Add(17*time.Hour), models.PriorityNormal, false),
	}
	events := []models.CalendarEvent{
		event("d", base.Add(26*time.Hour), time.Hour),
		event("e", base.Add(12*time.Hour), time.Hour),
	}

	groups := GroupByDay(FocusFilter(emails, events, false), loc)
	require.Len(t, groups, 3)
	require.Equal(t, base.AddDate(0, 0, 1), groups[0].Day)
	require.Equal(t, base, groups[1].Day)
	require.Equal(t, base.AddDate(0, 0, -1), groups[2].Day)
	require.Equal(t, []string{"d"}, ids(groups[0].Items))
	require.Equal(t, []string{"c", "e", "a"}, ids(groups[1].Items))
	require.Equal(t, []string{"b"}, ids(groups[2].Items))
}

func TestGroupByDayKeepsInsertionOrderOnTies(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	emails := []models.EmailThread{
		email("first", at, models.PriorityNormal, false),
		email("second", at, models.PriorityNormal, false),
	}
	events := []models.CalendarEvent{event("third", at, time.Hour)}

	for i := 0; i < 10; i++ {
		groups := GroupByDay(FocusFilter(emails, events, false), time.UTC)
		require.Len(t, groups, 1)
		require.Equal(t, []string{"first", "second", "third"}, ids(groups[0].Items))
	}
}

func TestGroupByDayUsesLocalDayBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 03:00 UTC on the 16th is 22:00 on the 15th at UTC-5.
	late := email("late", time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC), models.PriorityNormal, false)

	groups := GroupByDay(FocusFilter([]models.EmailThread{late}, nil, false), loc)
	require.Len(t, groups, 1)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), groups[0].Day)
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{name: "today", day: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), want: "Today"},
		{name: "today late", day: time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), want: "Today"},
		{name: "tomorrow", day: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), want: "Tomorrow"},
		{name: "yesterday", day: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), want: "Yesterday"},
		{name: "later", day: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), want: "Wednesday, March 20"},
		{name: "earlier", day: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), want: "Sunday, March 3"},
		{name: "month boundary", day: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), want: "Monday, April 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DayLabel(tt.day, now))
		})
	}
}

func TestDayLabelTomorrowAcrossMonthEnd(t *testing.T) {
	now := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	require.Equal(t, "Tomorrow", DayLabel(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now))
	require.Equal(t, "Yesterday", DayLabel(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), now))
}

func TestAggregateLabelsGroups(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	emails := []models.EmailThread{
		email("today", now.Add(-time.Hour), models.PriorityHigh, false),
		email("yesterday", now.Add(-20*time.Hour), models.PriorityNormal, false),
	}
	events := []models.CalendarEvent{event("tomorrow", now.Add(24*time.Hour), time.Hour)}

	groups := Aggregate(emails, events, false, now)
	require.Len(t, groups, 3)
	require.Equal(t, []string{"Tomorrow", "Today", "Yesterday"}, []string{groups[0].Label, groups[1].Label, groups[2].Label})

	focused := Aggregate(emails, events, true, now)
	require.Len(t, focused, 2)
	require.Equal(t, "Tomorrow", focused[0].Label)
	require.Equal(t, []string{"today"}, ids(focused[1].Items))
}

func TestAggregateEmptyInput(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	require.Empty(t, Aggregate(nil, nil, false, now))
	require.Empty(t, Aggregate([]models.EmailThread{}, []models.CalendarEvent{}, true, now))
	require.Equal(t, "All clear. Time to take a break.", EmptyMessage(false))
	require.Equal(t, "No priority items. Enjoy your focus time!", EmptyMessage(true))
}

func TestAggregatePartitionsFilteredItems(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	for seed := int64(1); seed <= 25; seed++ {
		emails, events := randomFixtures(seed, now)
		for _, focus := range []bool{false, true} {
			filtered := FocusFilter(emails, events, focus)
			groups := Aggregate(emails, events, focus, now)

			seen := make(map[string]int)
			for _, g := range groups {
				require.NotEmpty(t, g.Items)
				for _, item := range g.Items {
					seen[item.ItemID()]++
					require.True(t, StartOfDay(item.PrimaryInstant(), now.Location()).Equal(g.Day))
				}
			}
			require.Len(t, seen, len(filtered))
			for _, item := range filtered {
				require.Equal(t, 1, seen[item.ItemID()], "item %s", item.ItemID())
			}
			require.Equal(t, len(filtered), Count(groups))
		}
	}
}

func TestAggregateOrdering(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	for seed := int64(1); seed <= 25; seed++ {
		emails, events := randomFixtures(seed, now)
		groups := Aggregate(emails, events, false, now)
		for i := range groups {
			if i > 0 {
				require.True(t, groups[i-1].Day.After(groups[i].Day))
			}
			for j := 1; j < len(groups[i].Items); j++ {
				prev := groups[i].Items[j-1].PrimaryInstant()
				cur := groups[i].Items[j].PrimaryInstant()
				require.False(t, cur.After(prev))
			}
		}
	}
}

func TestAggregateIsIdempotentOnFlattenedOutput(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	for seed := int64(1); seed <= 10; seed++ {
		emails, events := randomFixtures(seed, now)
		first := Aggregate(emails, events, true, now)
		second := AggregateItems(Flatten(first), now)

		require.Len(t, second, len(first))
		for i := range first {
			require.Equal(t, first[i].Label, second[i].Label)
			require.True(t, first[i].Day.Equal(second[i].Day))
			require.Equal(t, ids(first[i].Items), ids(second[i].Items))
		}
	}
}

func TestFocusModeIsSubsetOfDefault(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	for seed := int64(1); seed <= 25; seed++ {
		emails, events := randomFixtures(seed, now)
		all := make(map[string]struct{})
		for _, item := range FocusFilter(emails, events, false) {
			all[item.ItemID()] = struct{}{}
		}
		for _, item := range FocusFilter(emails, events, true) {
			_, ok := all[item.ItemID()]
			require.True(t, ok, "focus item %s missing from default set", item.ItemID())
		}
	}
}
