package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// Get implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Get(ctx context.Context) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_time, end_time, tolerance_minutes, working_days, updated_by, created_at, updated_at
		FROM work_schedules
		WHERE singleton
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return ws, nil
}

// Upsert implements schedule.WorkScheduleRepository.
// The singleton row is created on first write and replaced afterwards.
func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (id, start_time, end_time, tolerance_minutes, working_days, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			tolerance_minutes = EXCLUDED.tolerance_minutes,
			working_days = EXCLUDED.working_days,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, start_time, end_time, tolerance_minutes, working_days, updated_by, created_at, updated_at
	`

	saved, err := scanWorkSchedule(q.QueryRow(ctx, query,
		newID(),
		clockToTime(ws.StartTime),
		clockToTime(ws.EndTime),
		ws.ToleranceMinutes,
		weekdaysToArray(ws.WorkingDays),
		ws.UpdatedBy,
	))
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to save work schedule: %w", err)
	}
	return saved, nil
}

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	var start, end pgtype.Time
	var days []int32

	err := row.Scan(&ws.ID, &start, &end, &ws.ToleranceMinutes, &days, &ws.UpdatedBy, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	ws.StartTime = timeToClock(start)
	ws.EndTime = timeToClock(end)
	ws.WorkingDays = arrayToWeekdays(days)
	return ws, nil
}

// working_days stores time.Weekday numbers, Sunday = 0.
func weekdaysToArray(days [7]bool) []int32 {
	out := make([]int32, 0, len(days))
	for wd, working := range days {
		if working {
			out = append(out, int32(wd))
		}
	}
	return out
}

func arrayToWeekdays(days []int32) [7]bool {
	var out [7]bool
	for _, d := range days {
		if d >= int32(time.Sunday) && d <= int32(time.Saturday) {
			out[d] = true
		}
	}
	return out
}
