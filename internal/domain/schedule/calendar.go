package schedule

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// IsWorkingDay maps the weekday of date to the schedule's working-day flag.
// With no schedule the caller-supplied default decides.
func IsWorkingDay(ws *WorkSchedule, date time.Time, def DefaultPolicy) bool {
	if ws == nil {
		return def == AssumeWorking
	}
	return ws.WorkingDays[date.Weekday()]
}

// CountWorkingDays counts working days in the inclusive range [start, end].
func CountWorkingDays(ws *WorkSchedule, start, end time.Time, def DefaultPolicy) int {
	count := 0
	utils.EachDay(start, end, func(day time.Time) {
		if IsWorkingDay(ws, day, def) {
			count++
		}
	})
	return count
}

// ComputeLateness compares checkIn with the schedule start plus the tolerance window.
// The boundary is built on checkIn's own calendar date and location.
func ComputeLateness(ws *WorkSchedule, checkIn time.Time) Lateness {
	if ws == nil || !IsWorkingDay(ws, checkIn, AssumeNonWorking) {
		return Lateness{}
	}

	expectedStart := ws.StartTime.On(checkIn)
	toleranceBoundary := expectedStart.Add(time.Duration(ws.ToleranceMinutes) * time.Minute)

	if !checkIn.After(toleranceBoundary) {
		return Lateness{}
	}

	lateMinutes := int(checkIn.Sub(toleranceBoundary) / time.Minute)
	if lateMinutes < 1 {
		lateMinutes = 1
	}
	return Lateness{IsLate: true, LateMinutes: lateMinutes}
}

// IsWithinWorkingHours reports lateness for a check-in at t.
func (ws *WorkSchedule) IsWithinWorkingHours(t time.Time) Lateness {
	return ComputeLateness(ws, t)
}
