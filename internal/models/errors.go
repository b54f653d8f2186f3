package models

import "errors"

var (
	ErrMissingID          = errors.New("id is required")
	ErrMissingTimestamp   = errors.New("timestamp is required")
	ErrInvalidPriority    = errors.New("priority must be one of low, normal, high, urgent")
	ErrInvalidEventType   = errors.New("event type must be one of meeting, task, reminder, focus")
	ErrInvalidEventStatus = errors.New("status must be one of confirmed, tentative, cancelled")
	ErrEndBeforeStart     = errors.New("end time is before start time")
)
