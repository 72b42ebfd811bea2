package leave

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Kind       string  `json:"kind" validate:"required,oneof=ferie permesso"`
	DateFrom   *string `json:"date_from,omitempty" validate:"omitempty,date"`
	DateTo     *string `json:"date_to,omitempty" validate:"omitempty,date"`
	Day        *string `json:"day,omitempty" validate:"omitempty,date"`
	TimeFrom   *string `json:"time_from,omitempty" validate:"omitempty,clock"`
	TimeTo     *string `json:"time_to,omitempty" validate:"omitempty,clock"`
	Reason     *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) > 0 {
		return errs
	}

	switch Kind(r.Kind) {
	case KindVacation:
		if r.DateFrom == nil || r.DateTo == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: ErrVacationRangeRequired.Error(),
			})
		} else {
			errs = append(errs, conflict.CheckDateOrder("date_to", *r.DateFrom, *r.DateTo)...)
		}
	case KindPermission:
		if r.Day == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "day",
				Message: ErrPermissionDayRequired.Error(),
			})
		}
		errs = append(errs, conflict.CheckTimeWindow(r.TimeFrom, r.TimeTo)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into a pending LeaveRequest.
func (r *CreateLeaveRequestRequest) ToEntity() LeaveRequest {
	l := LeaveRequest{
		EmployeeID: r.EmployeeID,
		Kind:       Kind(r.Kind),
		Status:     StatusPending,
		Reason:     r.Reason,
	}
	if l.IsVacation() {
		l.DateFrom = utils.ParseDatePtr(r.DateFrom)
		l.DateTo = utils.ParseDatePtr(r.DateTo)
		return l
	}
	l.Day = utils.ParseDatePtr(r.Day)
	l.TimeFrom = utils.ParseClockPtr(r.TimeFrom)
	l.TimeTo = utils.ParseClockPtr(r.TimeTo)
	return l
}

type ReviewLeaveRequestRequest struct {
	ID         string `json:"-" validate:"required"`
	ReviewedBy string `json:"-"`
}

func (r *ReviewLeaveRequestRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLeaveRequestsRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Kind       *string `json:"kind,omitempty" validate:"omitempty,oneof=ferie permesso"`
}

func (r *ListLeaveRequestsRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ListLeaveRequestsRequest) ToFilter() ListFilter {
	f := ListFilter{EmployeeID: r.EmployeeID}
	if r.Status != nil {
		s := Status(*r.Status)
		f.Status = &s
	}
	if r.Kind != nil {
		k := Kind(*r.Kind)
		f.Kind = &k
	}
	return f
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       Kind    `json:"kind"`
	Status     Status  `json:"status"`
	DateFrom   *string `json:"date_from,omitempty"`
	DateTo     *string `json:"date_to,omitempty"`
	Day        *string `json:"day,omitempty"`
	TimeFrom   *string `json:"time_from,omitempty"`
	TimeTo     *string `json:"time_to,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	ReviewedAt *string `json:"reviewed_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// LeaveRequestResult carries the validation outcome of a write. LeaveRequest is
// nil when the write was rejected.
type LeaveRequestResult struct {
	Validation   conflict.ValidationResult `json:"validation"`
	LeaveRequest *LeaveRequestResponse     `json:"leave_request,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	res := LeaveRequestResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Kind:       l.Kind,
		Status:     l.Status,
		DateFrom:   utils.FormatDatePtr(l.DateFrom),
		DateTo:     utils.FormatDatePtr(l.DateTo),
		Day:        utils.FormatDatePtr(l.Day),
		Reason:     l.Reason,
		ReviewedBy: l.ReviewedBy,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.TimeFrom != nil {
		s := l.TimeFrom.String()
		res.TimeFrom = &s
	}
	if l.TimeTo != nil {
		s := l.TimeTo.String()
		res.TimeTo = &s
	}
	if l.ReviewedAt != nil {
		s := l.ReviewedAt.Format(time.RFC3339)
		res.ReviewedAt = &s
	}
	return res
}
