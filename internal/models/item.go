package models

import (
	"strconv"
	"time"
)

// ItemKind is the discriminator of a TimelineItem.
type ItemKind string

const (
	KindEmail ItemKind = "email"
	KindEvent ItemKind = "event"
)

// TimelineItem is either an *EmailThread or a *CalendarEvent.
// The unexported marker method keeps the set of variants closed.
type TimelineItem interface {
	Kind() ItemKind
	ItemID() string
	// PrimaryInstant is the timestamp for emails and the start time for events.
	PrimaryInstant() time.Time

	timelineItem()
}

var (
	_ TimelineItem = (*EmailThread)(nil)
	_ TimelineItem = (*CalendarEvent)(nil)
)

func indexedField(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
