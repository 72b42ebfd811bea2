package leave

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
)

type LeaveServiceImpl struct {
	db database.Transactor
	leave.LeaveRequestRepository
	snapshots conflictsvc.SnapshotLoader
}

func NewLeaveService(db database.Transactor, leaveRequestRepository leave.LeaveRequestRepository, snapshots conflictsvc.SnapshotLoader) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		snapshots:              snapshots,
	}
}

// validate runs the overlap rules matching the request kind.
func validate(snap conflictsvc.Snapshot, l leave.LeaveRequest) conflict.ValidationResult {
	if l.IsPermission() {
		return conflictsvc.ValidatePermission(snap, *l.Day, l.TimeFrom, l.TimeTo)
	}
	return conflictsvc.ValidateVacationRange(snap, *l.DateFrom, *l.DateTo)
}

// CreateLeaveRequest implements leave.LeaveService.
// The request is stored as pending only when it passes validation.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResult, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResult{}, err
	}

	entity := req.ToEntity()
	snap, err := s.snapshots.Load(ctx, entity.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResult{}, err
	}

	result := leave.LeaveRequestResult{Validation: validate(snap, entity)}
	if !result.Validation.IsValid {
		return result, nil
	}

	created, err := s.LeaveRequestRepository.Create(ctx, entity)
	if err != nil {
		return leave.LeaveRequestResult{}, conflict.Storage("create leave request", err)
	}

	res := leave.ToResponse(created)
	result.LeaveRequest = &res
	return result, nil
}

// ApproveLeaveRequest implements leave.LeaveService.
// Approval re-validates against the entries stored at approval time.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequestResult, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResult{}, err
	}

	var result leave.LeaveRequestResult
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		request, err := s.pending(ctx, req.ID)
		if err != nil {
			return err
		}

		snap, err := s.snapshots.Load(ctx, request.EmployeeID)
		if err != nil {
			return err
		}

		result.Validation = validate(snap, request)
		if !result.Validation.IsValid {
			return nil
		}

		approved, err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.StatusApproved, reviewer(req.ReviewedBy))
		if err != nil {
			return conflict.Storage("approve leave request", err)
		}

		res := leave.ToResponse(approved)
		result.LeaveRequest = &res
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResult{}, err
	}

	return result, nil
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.pending(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	rejected, err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.StatusRejected, reviewer(req.ReviewedBy))
	if err != nil {
		return leave.LeaveRequestResponse{}, conflict.Storage("reject leave request", err)
	}

	return leave.ToResponse(rejected), nil
}

func (s *LeaveServiceImpl) pending(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, conflict.Storage("get leave request", err)
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	return request, nil
}

func reviewer(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, conflict.Storage("get leave request", err)
	}
	return leave.ToResponse(request), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, req leave.ListLeaveRequestsRequest) ([]leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx, req.ToFilter())
	if err != nil {
		return nil, conflict.Storage("list leave requests", err)
	}

	res := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, leave.ToResponse(r))
	}
	return res, nil
}

// DeleteLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	if err := s.LeaveRequestRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return err
		}
		return conflict.Storage("delete leave request", err)
	}
	return nil
}
