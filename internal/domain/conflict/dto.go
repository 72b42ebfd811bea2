package conflict

import (
	"fmt"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type GetIndexRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Operation  string `json:"kind" validate:"required,oneof=ferie permesso sick_leave attendance"`
	Generation string `json:"generation" validate:"max=64"`
}

func (r *GetIndexRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidateVacationRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,date"`
	EndDate    string `json:"end_date" validate:"required,date"`
}

func (r *ValidateVacationRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 {
		errs = append(errs, CheckDateOrder("end_date", r.StartDate, r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidatePermissionRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Day        string  `json:"day" validate:"required,date"`
	TimeFrom   *string `json:"time_from,omitempty" validate:"omitempty,clock"`
	TimeTo     *string `json:"time_to,omitempty" validate:"omitempty,clock"`
}

func (r *ValidatePermissionRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 {
		errs = append(errs, CheckTimeWindow(r.TimeFrom, r.TimeTo)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidateSickLeaveRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	StartDate  string  `json:"start_date" validate:"required,date"`
	EndDate    *string `json:"end_date,omitempty" validate:"omitempty,date"`
}

func (r *ValidateSickLeaveRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 && r.EndDate != nil {
		errs = append(errs, CheckDateOrder("end_date", r.StartDate, *r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidateAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,date"`
}

func (r *ValidateAttendanceRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type DetailResponse struct {
	Date        string   `json:"date"`
	Kind        Kind     `json:"kind"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type SummaryResponse struct {
	TotalConflicts int          `json:"total_conflicts"`
	ByKind         map[Kind]int `json:"by_kind"`
}

type IndexResponse struct {
	Generation    string           `json:"generation,omitempty"`
	EmployeeID    string           `json:"employee_id"`
	Operation     Operation        `json:"kind"`
	ConflictDates []string         `json:"conflict_dates"`
	Details       []DetailResponse `json:"details"`
	Summary       SummaryResponse  `json:"summary"`
}

func ToIndexResponse(employeeID string, op Operation, generation string, idx Index) IndexResponse {
	res := IndexResponse{
		Generation:    generation,
		EmployeeID:    employeeID,
		Operation:     op,
		ConflictDates: make([]string, 0, len(idx.ConflictDates)),
		Details:       make([]DetailResponse, 0, len(idx.Details)),
		Summary: SummaryResponse{
			TotalConflicts: idx.Summary.TotalConflicts,
			ByKind:         idx.Summary.ByKind,
		},
	}
	for _, d := range idx.ConflictDates {
		res.ConflictDates = append(res.ConflictDates, utils.FormatDate(d))
	}
	for _, d := range idx.Details {
		res.Details = append(res.Details, DetailResponse{
			Date:        utils.FormatDate(d.Date),
			Kind:        d.Kind,
			Description: d.Description,
			Severity:    d.Severity,
		})
	}
	return res
}

// MaxRangeDays bounds the span of a single dated entry, inclusive of both ends.
const MaxRangeDays = 3 * 366

// CheckDateOrder rejects an end date earlier than its start date, or one
// further than MaxRangeDays from it.
func CheckDateOrder(field, start, end string) validator.ValidationErrors {
	s, _ := utils.ParseDate(start)
	e, _ := utils.ParseDate(end)
	if e.Before(s) {
		return validator.ValidationErrors{{Field: field, Message: field + " must not be before the start date"}}
	}
	if days := int(e.Sub(s).Hours()/24) + 1; days > MaxRangeDays {
		return validator.ValidationErrors{{Field: field, Message: fmt.Sprintf("%s must be within %d days of the start date", field, MaxRangeDays)}}
	}
	return nil
}

// CheckTimeWindow requires both ends of a time window, ordered, or neither.
func CheckTimeWindow(from, to *string) validator.ValidationErrors {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil {
		return validator.ValidationErrors{{Field: "time_to", Message: "time_from and time_to must be set together"}}
	}
	f, _ := utils.ParseClock(*from)
	t, _ := utils.ParseClock(*to)
	if !f.Before(t) {
		return validator.ValidationErrors{{Field: "time_to", Message: "time_to must be after time_from"}}
	}
	return nil
}
