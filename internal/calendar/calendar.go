// Package calendar builds and renders the month grid of the mini calendar.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
)

// EventMarker follows the day number of days that have events.
const EventMarker = "·"

// Day is one cell of the grid.
type Day struct {
	Date       time.Time
	InMonth    bool
	HasEvent   bool
	IsToday    bool
	IsSelected bool
}

// Options controls grid styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	OutsideStyle  lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns plain styles with the weekday header on.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Bold(true),
		DayStyle:      lipgloss.NewStyle(),
		OutsideStyle:  lipgloss.NewStyle().Faint(true),
		EventStyle:    lipgloss.NewStyle(),
		TodayStyle:    lipgloss.NewStyle().Bold(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// FirstOfMonth returns midnight on the first day of t's month in t's location.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return FirstOfMonth(month).AddDate(0, 1, -1).Day()
}

// ParseMonth parses "2006-01" or "January 2006" in loc.
func ParseMonth(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM)", value)
}

// Title is the month heading, e.g. "March 2024".
func Title(month time.Time) string {
	return month.Format("January 2006")
}

// DayKey identifies a calendar date independent of time zone pointers, so it
// is safe as a map key where time.Time is not.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the date of t in t's own location.
func KeyOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// EventDays returns the set of dates in loc on which at least one event starts.
func EventDays(events []models.CalendarEvent, loc *time.Location) map[DayKey]bool {
	if loc == nil {
		loc = time.Local
	}
	days := make(map[DayKey]bool, len(events))
	for i := range events {
		days[KeyOf(events[i].StartTime.In(loc))] = true
	}
	return days
}

// Weeks lays out month as Sunday-first weeks. Leading and trailing cells come
// from the neighboring months so every week has seven days.
func Weeks(month, selected, now time.Time, eventDays map[DayKey]bool) [][]Day {
	loc := month.Location()
	first := FirstOfMonth(month)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	today := timeline.StartOfDay(now, loc)
	var selectedDay time.Time
	if !selected.IsZero() {
		selectedDay = timeline.StartOfDay(selected, loc)
	}

	var weeks [][]Day
	var week []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		week = append(week, Day{
			Date:       d,
			InMonth:    d.Month() == first.Month(),
			HasEvent:   eventDays[KeyOf(d)],
			IsToday:    d.Equal(today),
			IsSelected: !selectedDay.IsZero() && d.Equal(selectedDay),
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}
	return weeks
}

// Render draws the weeks as lines of three-column cells.
func Render(weeks [][]Day, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}
	for _, week := range weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, renderDay(day, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, ""), " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(day Day, opts Options) string {
	marker := " "
	if day.HasEvent {
		marker = EventMarker
	}

	style := opts.DayStyle
	switch {
	case !day.InMonth:
		style = opts.OutsideStyle
	case day.HasEvent:
		style = style.Inherit(opts.EventStyle)
	}
	if day.IsToday {
		style = opts.TodayStyle.Inherit(style)
	}
	if day.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%2d", day.Date.Day())) + marker
}
