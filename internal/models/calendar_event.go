package models

import (
	"strings"
	"time"
)

// EventType categorizes calendar events.
type EventType string

const (
	EventTypeMeeting  EventType = "meeting"
	EventTypeTask     EventType = "task"
	EventTypeReminder EventType = "reminder"
	EventTypeFocus    EventType = "focus"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeMeeting, EventTypeTask, EventTypeReminder, EventTypeFocus:
		return true
	default:
		return false
	}
}

// EventStatus is the attendance state of an event.
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusTentative EventStatus = "tentative"
	EventStatusCancelled EventStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusConfirmed, EventStatusTentative, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// CalendarEvent is the "event" variant of TimelineItem.
type CalendarEvent struct {
	ID             string      `json:"id" yaml:"id"`
	Title          string      `json:"title" yaml:"title"`
	Description    string      `json:"description,omitempty" yaml:"description,omitempty"`
	StartTime      time.Time   `json:"start_time" yaml:"start_time"`
	EndTime        time.Time   `json:"end_time" yaml:"end_time"`
	Attendees      []Person    `json:"attendees" yaml:"attendees"`
	Location       string      `json:"location,omitempty" yaml:"location,omitempty"`
	IsAllDay       bool        `json:"is_all_day" yaml:"is_all_day"`
	EventType      EventType   `json:"event_type" yaml:"event_type"`
	LinkedThread   string      `json:"linked_thread,omitempty" yaml:"linked_thread,omitempty"` // thread id
	ConferenceLink string      `json:"conference_link,omitempty" yaml:"conference_link,omitempty"`
	Status         EventStatus `json:"status" yaml:"status"`
}

func (*CalendarEvent) timelineItem() {}

// Kind returns KindEvent.
func (*CalendarEvent) Kind() ItemKind { return KindEvent }

// ItemID returns the event id.
func (e *CalendarEvent) ItemID() string { return e.ID }

// PrimaryInstant returns the start time.
func (e *CalendarEvent) PrimaryInstant() time.Time { return e.StartTime }

// Duration returns EndTime - StartTime.
func (e *CalendarEvent) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// DurationMinutes returns the whole minutes between start and end.
func (e *CalendarEvent) DurationMinutes() int {
	return int(e.Duration() / time.Minute)
}

// Validate checks the event at the ingestion boundary.
func (e *CalendarEvent) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(e.ID) == "" {
		validation.Add("id", ErrMissingID)
	}
	if e.StartTime.IsZero() {
		validation.Add("start_time", ErrMissingTimestamp)
	}
	if e.EndTime.IsZero() {
		validation.Add("end_time", ErrMissingTimestamp)
	} else if e.EndTime.Before(e.StartTime) {
		validation.Add("end_time", ErrEndBeforeStart)
	}
	if !e.EventType.Valid() {
		validation.Add("event_type", ErrInvalidEventType)
	}
	if !e.Status.Valid() {
		validation.Add("status", ErrInvalidEventStatus)
	}
	for i := range e.Attendees {
		validation.Add(indexedField("attendees", i), e.Attendees[i].Validate())
	}
	return validation.Err()
}
