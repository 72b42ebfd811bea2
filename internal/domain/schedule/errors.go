package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrInvalidTimeRange     = errors.New("end_time must be after start_time")
	ErrNoWorkingDays        = errors.New("at least one working day is required")
)
