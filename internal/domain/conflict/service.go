package conflict

import "context"

// ConflictService loads an employee's stored entries and answers advisory
// (index) and authoritative (validation) questions over them.
type ConflictService interface {
	GetConflictIndex(ctx context.Context, req GetIndexRequest) (IndexResponse, error)
	ValidateVacation(ctx context.Context, req ValidateVacationRequest) (ValidationResult, error)
	ValidatePermission(ctx context.Context, req ValidatePermissionRequest) (ValidationResult, error)
	ValidateSickLeave(ctx context.Context, req ValidateSickLeaveRequest) (ValidationResult, error)
	ValidateAttendance(ctx context.Context, req ValidateAttendanceRequest) (ValidationResult, error)
}
