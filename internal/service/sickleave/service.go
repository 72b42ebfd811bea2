package sickleave

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
)

type SickLeaveServiceImpl struct {
	db database.Transactor
	sickleave.SickLeaveRepository
	snapshots conflictsvc.SnapshotLoader
}

func NewSickLeaveService(db database.Transactor, sickLeaveRepository sickleave.SickLeaveRepository, snapshots conflictsvc.SnapshotLoader) *SickLeaveServiceImpl {
	return &SickLeaveServiceImpl{
		db:                  db,
		SickLeaveRepository: sickLeaveRepository,
		snapshots:           snapshots,
	}
}

// CreateSickLeave implements sickleave.SickLeaveService.
// Validation and insert run in one transaction; a sick leave already starting
// on the same date is reported as a duplicate.
func (s *SickLeaveServiceImpl) CreateSickLeave(ctx context.Context, req sickleave.CreateSickLeaveRequest) (sickleave.SickLeaveResult, error) {
	if err := req.Validate(); err != nil {
		return sickleave.SickLeaveResult{}, err
	}

	entity := req.ToEntity()
	var result sickleave.SickLeaveResult

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshots.Load(ctx, entity.EmployeeID)
		if err != nil {
			return err
		}

		result.Validation = conflictsvc.ValidateSickLeaveRange(snap, entity.StartDate, &entity.EndDate)
		if !result.Validation.IsValid {
			return nil
		}

		created, err := s.SickLeaveRepository.Create(ctx, entity)
		if err != nil {
			if errors.Is(err, sickleave.ErrDuplicateSickLeave) {
				return err
			}
			return conflict.Storage("create sick leave", err)
		}

		res := sickleave.ToResponse(created)
		result.SickLeave = &res
		return nil
	})
	if err != nil {
		if errors.Is(err, sickleave.ErrDuplicateSickLeave) {
			return sickleave.SickLeaveResult{
				Validation: conflict.Rejected(conflictsvc.DuplicateViolation(conflict.KindSickLeave, entity.StartDate)),
			}, nil
		}
		return sickleave.SickLeaveResult{}, err
	}

	return result, nil
}

// ListSickLeaves implements sickleave.SickLeaveService.
func (s *SickLeaveServiceImpl) ListSickLeaves(ctx context.Context, employeeID string) ([]sickleave.SickLeaveResponse, error) {
	leaves, err := s.SickLeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, conflict.Storage("list sick leaves", err)
	}

	res := make([]sickleave.SickLeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		res = append(res, sickleave.ToResponse(l))
	}
	return res, nil
}

// DeleteSickLeave implements sickleave.SickLeaveService.
func (s *SickLeaveServiceImpl) DeleteSickLeave(ctx context.Context, id string) error {
	if err := s.SickLeaveRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, sickleave.ErrSickLeaveNotFound) {
			return err
		}
		return conflict.Storage("delete sick leave", err)
	}
	return nil
}
