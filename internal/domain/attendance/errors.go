package attendance

import "errors"

// Attendance domain errors
var (
	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrCheckoutDisabled  = errors.New("check-out is disabled for this company")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateEntry     = errors.New("an attendance of this kind is already registered for the date")
)
