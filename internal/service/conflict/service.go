package conflict

import (
	"context"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

type ConflictServiceImpl struct {
	loader SnapshotLoader
}

func NewConflictService(loader SnapshotLoader) conflict.ConflictService {
	return &ConflictServiceImpl{loader: loader}
}

// GetConflictIndex implements conflict.ConflictService.
// The generation token is echoed untouched so callers can drop superseded answers.
func (s *ConflictServiceImpl) GetConflictIndex(ctx context.Context, req conflict.GetIndexRequest) (conflict.IndexResponse, error) {
	if err := req.Validate(); err != nil {
		return conflict.IndexResponse{}, err
	}

	snap, err := s.loader.Load(ctx, req.EmployeeID)
	if err != nil {
		return conflict.IndexResponse{}, err
	}

	op := conflict.Operation(req.Operation)
	return conflict.ToIndexResponse(req.EmployeeID, op, req.Generation, BuildIndex(snap, op)), nil
}

// ValidateVacation implements conflict.ConflictService.
func (s *ConflictServiceImpl) ValidateVacation(ctx context.Context, req conflict.ValidateVacationRequest) (conflict.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return conflict.ValidationResult{}, err
	}

	snap, err := s.loader.Load(ctx, req.EmployeeID)
	if err != nil {
		return conflict.ValidationResult{}, err
	}

	start, _ := utils.ParseDate(req.StartDate)
	end, _ := utils.ParseDate(req.EndDate)
	return ValidateVacationRange(snap, start, end), nil
}

// ValidatePermission implements conflict.ConflictService.
func (s *ConflictServiceImpl) ValidatePermission(ctx context.Context, req conflict.ValidatePermissionRequest) (conflict.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return conflict.ValidationResult{}, err
	}

	snap, err := s.loader.Load(ctx, req.EmployeeID)
	if err != nil {
		return conflict.ValidationResult{}, err
	}

	day, _ := utils.ParseDate(req.Day)
	return ValidatePermission(snap, day, utils.ParseClockPtr(req.TimeFrom), utils.ParseClockPtr(req.TimeTo)), nil
}

// ValidateSickLeave implements conflict.ConflictService.
func (s *ConflictServiceImpl) ValidateSickLeave(ctx context.Context, req conflict.ValidateSickLeaveRequest) (conflict.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return conflict.ValidationResult{}, err
	}

	snap, err := s.loader.Load(ctx, req.EmployeeID)
	if err != nil {
		return conflict.ValidationResult{}, err
	}

	start, _ := utils.ParseDate(req.StartDate)
	return ValidateSickLeaveRange(snap, start, utils.ParseDatePtr(req.EndDate)), nil
}

// ValidateAttendance implements conflict.ConflictService.
func (s *ConflictServiceImpl) ValidateAttendance(ctx context.Context, req conflict.ValidateAttendanceRequest) (conflict.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return conflict.ValidationResult{}, err
	}

	snap, err := s.loader.Load(ctx, req.EmployeeID)
	if err != nil {
		return conflict.ValidationResult{}, err
	}

	date, _ := utils.ParseDate(req.Date)
	return ValidateAttendanceEntry(snap, date), nil
}
