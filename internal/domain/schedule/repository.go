package schedule

import "context"

type WorkScheduleRepository interface {
	// Get returns the company-wide schedule or ErrWorkScheduleNotFound.
	Get(ctx context.Context) (WorkSchedule, error)
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
}
