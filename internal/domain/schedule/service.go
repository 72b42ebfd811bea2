package schedule

import "context"

type ScheduleService interface {
	GetWorkSchedule(ctx context.Context) (WorkScheduleResponse, error)
	UpdateWorkSchedule(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)
}
