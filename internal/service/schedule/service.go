package schedule

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	workScheduleRepo schedule.WorkScheduleRepository
}

func NewScheduleService(workScheduleRepo schedule.WorkScheduleRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{workScheduleRepo: workScheduleRepo}
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkSchedule(ctx context.Context) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return schedule.WorkScheduleResponse{}, err
		}
		return schedule.WorkScheduleResponse{}, conflict.Storage("get work schedule", err)
	}
	return schedule.ToResponse(ws), nil
}

// UpdateWorkSchedule implements schedule.ScheduleService.
// The schedule is a singleton, so an update creates it when missing.
func (s *scheduleServiceImpl) UpdateWorkSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err := s.workScheduleRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return schedule.WorkScheduleResponse{}, conflict.Storage("update work schedule", err)
	}
	return schedule.ToResponse(ws), nil
}
