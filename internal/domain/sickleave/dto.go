package sickleave

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type CreateSickLeaveRequest struct {
	EmployeeID    string  `json:"employee_id" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required,date"`
	EndDate       *string `json:"end_date,omitempty" validate:"omitempty,date"`
	ReferenceCode *string `json:"reference_code,omitempty" validate:"omitempty,max=64"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	CreatedBy     *string `json:"-"`
}

func (r *CreateSickLeaveRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 && r.EndDate != nil {
		errs = append(errs, conflict.CheckDateOrder("end_date", r.StartDate, *r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the requested period. A missing end date means a single day.
func (r *CreateSickLeaveRequest) Range() (start, end time.Time) {
	start, _ = utils.ParseDate(r.StartDate)
	end = start
	if e := utils.ParseDatePtr(r.EndDate); e != nil {
		end = *e
	}
	return start, end
}

func (r *CreateSickLeaveRequest) ToEntity() SickLeave {
	start, end := r.Range()
	return SickLeave{
		EmployeeID:    r.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		ReferenceCode: r.ReferenceCode,
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
	}
}

type SickLeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ReferenceCode *string `json:"reference_code,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type SickLeaveResult struct {
	Validation conflict.ValidationResult `json:"validation"`
	SickLeave  *SickLeaveResponse        `json:"sick_leave,omitempty"`
}

func ToResponse(s SickLeave) SickLeaveResponse {
	return SickLeaveResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		StartDate:     utils.FormatDate(s.StartDate),
		EndDate:       utils.FormatDate(s.EndDate),
		ReferenceCode: s.ReferenceCode,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}
