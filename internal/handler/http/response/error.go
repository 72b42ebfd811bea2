package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Infrastructure errors are never reported as rejections
	case errors.Is(err, conflict.ErrStorageUnavailable):
		slog.Error("storage unavailable", "error", err)
		ServiceUnavailable(w, "Storage temporarily unavailable, please retry")
	case errors.Is(err, conflict.ErrInvalidOperation):
		BadRequest(w, err.Error(), nil)

	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrAdminRequired):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, trip.ErrBusinessTripNotFound):
		NotFound(w, "Business trip not found")
	case errors.Is(err, sickleave.ErrSickLeaveNotFound):
		NotFound(w, "Sick leave not found")
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not configured")

	// State errors
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, trip.ErrBusinessTripAlreadyProcessed):
		Conflict(w, "Business trip already processed")
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrCheckoutDisabled):
		Forbidden(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

// HandleValidation writes data when the validation passed and a 409 carrying
// every violation when it did not.
func HandleValidation(w http.ResponseWriter, result conflict.ValidationResult, created bool, message string, data interface{}) {
	if !result.IsValid {
		Rejected(w, result.Reason(), result.Violations, data)
		return
	}
	if created {
		Created(w, message, data)
		return
	}
	SuccessWithMessage(w, message, data)
}
