package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create returns ErrDuplicateEntry when the (employee, date, entry kind) slot is taken.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByEmployee returns every row of the employee, oldest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// List returns rows in the inclusive date range, optionally for one employee.
	List(ctx context.Context, employeeID *string, from, to time.Time) ([]Attendance, error)

	// GetOpenSession returns the row of date that has a check-in and no check-out,
	// or ErrAttendanceNotFound.
	GetOpenSession(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// UpdateCheckOut returns ErrAlreadyCheckedOut when the row was closed meanwhile.
	UpdateCheckOut(ctx context.Context, attendance Attendance) (Attendance, error)

	Delete(ctx context.Context, id string) error
}
