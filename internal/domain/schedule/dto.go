package schedule

import (
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type UpdateWorkScheduleRequest struct {
	StartTime        string   `json:"start_time" validate:"required,clock"`
	EndTime          string   `json:"end_time" validate:"required,clock"`
	ToleranceMinutes int      `json:"tolerance_minutes" validate:"gte=0,lte=240"`
	WorkingDays      []string `json:"working_days" validate:"required,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	UpdatedBy        *string  `json:"-"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	errs := validator.Struct(r)

	if len(errs) == 0 {
		start, _ := utils.ParseClock(r.StartTime)
		end, _ := utils.ParseClock(r.EndTime)
		if !start.Before(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: ErrInvalidTimeRange.Error(),
			})
		}
		if len(r.WorkingDays) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: ErrNoWorkingDays.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into a WorkSchedule.
func (r *UpdateWorkScheduleRequest) ToEntity() WorkSchedule {
	start, _ := utils.ParseClock(r.StartTime)
	end, _ := utils.ParseClock(r.EndTime)

	ws := WorkSchedule{
		StartTime:        start,
		EndTime:          end,
		ToleranceMinutes: r.ToleranceMinutes,
		UpdatedBy:        r.UpdatedBy,
	}
	for _, day := range r.WorkingDays {
		for i, name := range weekdayNames {
			if name == day {
				ws.WorkingDays[i] = true
			}
		}
	}
	return ws
}

type WorkScheduleResponse struct {
	ID               string   `json:"id"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	ToleranceMinutes int      `json:"tolerance_minutes"`
	WorkingDays      []string `json:"working_days"`
	UpdatedAt        string   `json:"updated_at"`
}

func ToResponse(ws WorkSchedule) WorkScheduleResponse {
	days := make([]string, 0, 7)
	for i, working := range ws.WorkingDays {
		if working {
			days = append(days, weekdayNames[i])
		}
	}
	return WorkScheduleResponse{
		ID:               ws.ID,
		StartTime:        ws.StartTime.String(),
		EndTime:          ws.EndTime.String(),
		ToleranceMinutes: ws.ToleranceMinutes,
		WorkingDays:      days,
		UpdatedAt:        ws.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
