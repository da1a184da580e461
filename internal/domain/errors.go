package domain

import (
	"errors"
	"fmt"
)

// ErrMissingStatePension is returned when a household has no state pension configured.
var ErrMissingStatePension = errors.New("no state pension configured")

// ValidationError reports bad caller input found before a simulation starts.
// Err holds the underlying error, such as an *InvalidScheduleError, when there is one.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// InvalidScheduleError reports an empty or unparseable rate schedule.
type InvalidScheduleError struct {
	Name   string
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	if e.Name == "" {
		return "invalid rate schedule: " + e.Reason
	}
	return fmt.Sprintf("invalid rate schedule %s: %s", e.Name, e.Reason)
}

// InsufficientScheduleError reports a schedule-driven run missing one of its required schedules.
type InsufficientScheduleError struct {
	Schedule string
}

func (e *InsufficientScheduleError) Error() string {
	return fmt.Sprintf("%s schedule is empty; schedule-driven projections need at least one row per source", e.Schedule)
}
