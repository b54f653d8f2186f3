package calendar

import "time"

// Cursor is the visible month and the selected day of the mini calendar.
type Cursor struct {
	Month    time.Time
	Selected time.Time
}

// NewCursor shows now's month with today selected.
func NewCursor(now time.Time) Cursor {
	return Cursor{Month: FirstOfMonth(now), Selected: now}
}

// Prev moves the visible month back one month; the selection is kept.
func (c Cursor) Prev() Cursor {
	c.Month = FirstOfMonth(c.Month).AddDate(0, -1, 0)
	return c
}

// Next moves the visible month forward one month.
func (c Cursor) Next() Cursor {
	c.Month = FirstOfMonth(c.Month).AddDate(0, 1, 0)
	return c
}

// Today jumps back to now's month and selects now.
func (c Cursor) Today(now time.Time) Cursor {
	return NewCursor(now)
}
