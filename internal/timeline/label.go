package timeline

import "time"

const dayLabelLayout = "Monday, January 2"

// DayLabel names day relative to now: Today, Tomorrow, Yesterday, or
// "Weekday, Month Day". Both are compared as calendar days in now's location.
func DayLabel(day, now time.Time) string {
	loc := now.Location()
	target := StartOfDay(day, loc)
	today := StartOfDay(now, loc)

	switch {
	case target.Equal(today):
		return "Today"
	case target.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case target.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return target.Format(dayLabelLayout)
	}
}
