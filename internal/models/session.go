package models

import "time"

// FocusSession is a block of time with notifications suppressed.
type FocusSession struct {
	ID                   string    `json:"id" yaml:"id"`
	StartTime            time.Time `json:"start_time" yaml:"start_time"`
	EndTime              time.Time `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	IsActive             bool      `json:"is_active" yaml:"is_active"`
	BlockedNotifications bool      `json:"blocked_notifications" yaml:"blocked_notifications"`
}

// Elapsed returns how long the session has run at now. Ended sessions stop at EndTime.
func (s FocusSession) Elapsed(now time.Time) time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	end := now
	if !s.IsActive && !s.EndTime.IsZero() {
		end = s.EndTime
	}
	if end.Before(s.StartTime) {
		return 0
	}
	return end.Sub(s.StartTime)
}

// QuickTask is a checklist entry in the context panel.
type QuickTask struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}
