package models

import (
	"strings"
	"time"
)

// Priority ranks an email thread.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// IsHighSignal reports whether p is high or urgent.
func (p Priority) IsHighSignal() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// EmailThread is the "email" variant of TimelineItem.
type EmailThread struct {
	ID            string    `json:"id" yaml:"id"`
	Subject       string    `json:"subject" yaml:"subject"`
	Snippet       string    `json:"snippet" yaml:"snippet"`
	From          Person    `json:"from" yaml:"from"`
	To            []Person  `json:"to" yaml:"to"`
	Cc            []Person  `json:"cc,omitempty" yaml:"cc,omitempty"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	IsRead        bool      `json:"is_read" yaml:"is_read"`
	IsStarred     bool      `json:"is_starred" yaml:"is_starred"`
	Labels        []string  `json:"labels" yaml:"labels"`
	HasAttachment bool      `json:"has_attachment" yaml:"has_attachment"`
	ReplyCount    int       `json:"reply_count" yaml:"reply_count"`
	LinkedEvent   string    `json:"linked_event,omitempty" yaml:"linked_event,omitempty"` // event id
	Priority      Priority  `json:"priority" yaml:"priority"`
}

func (*EmailThread) timelineItem() {}

// Kind returns KindEmail.
func (*EmailThread) Kind() ItemKind { return KindEmail }

// ItemID returns the thread id.
func (e *EmailThread) ItemID() string { return e.ID }

// PrimaryInstant returns the thread timestamp.
func (e *EmailThread) PrimaryInstant() time.Time { return e.Timestamp }

// Validate checks the thread at the ingestion boundary.
func (e *EmailThread) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(e.ID) == "" {
		validation.Add("id", ErrMissingID)
	}
	if e.Timestamp.IsZero() {
		validation.Add("timestamp", ErrMissingTimestamp)
	}
	if !e.Priority.Valid() {
		validation.Add("priority", ErrInvalidPriority)
	}
	validation.Add("from", e.From.Validate())
	for i := range e.To {
		validation.Add(indexedField("to", i), e.To[i].Validate())
	}
	for i := range e.Cc {
		validation.Add(indexedField("cc", i), e.Cc[i].Validate())
	}
	if e.ReplyCount < 0 {
		validation.AddMessage("reply_count", "reply count must not be negative")
	}
	return validation.Err()
}
