package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn re-validates today's state and writes the full record, or nothing.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResult, error)

	// CheckOut closes today's open check-in.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetTodayStatus reports the employee's current-day state.
	GetTodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)

	// CreateManualAttendance registers an administrator entry for a past or present date.
	CreateManualAttendance(ctx context.Context, req ManualAttendanceRequest) (ManualAttendanceResult, error)

	ListAttendance(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)

	// DeleteAttendance hard deletes a record and frees its date.
	DeleteAttendance(ctx context.Context, id string) error
}
