package trip

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

type CreateBusinessTripRequest struct {
	EmployeeID  string  `json:"employee_id" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,date"`
	EndDate     string  `json:"end_date" validate:"required,date"`
	Destination string  `json:"destination" validate:"required,max=255"`
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateBusinessTripRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 {
		errs = append(errs, conflict.CheckDateOrder("end_date", r.StartDate, r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateBusinessTripRequest) ToEntity() BusinessTrip {
	start, _ := utils.ParseDate(r.StartDate)
	end, _ := utils.ParseDate(r.EndDate)
	return BusinessTrip{
		EmployeeID:  r.EmployeeID,
		StartDate:   start,
		EndDate:     end,
		Destination: r.Destination,
		Status:      StatusPending,
		Reason:      r.Reason,
	}
}

type ReviewBusinessTripRequest struct {
	ID         string `json:"-" validate:"required"`
	ReviewedBy string `json:"-"`
}

func (r *ReviewBusinessTripRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type ListBusinessTripsRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

func (r *ListBusinessTripsRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ListBusinessTripsRequest) ToFilter() ListFilter {
	f := ListFilter{EmployeeID: r.EmployeeID}
	if r.Status != nil {
		s := Status(*r.Status)
		f.Status = &s
	}
	return f
}

type BusinessTripResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Destination string  `json:"destination"`
	Status      Status  `json:"status"`
	Reason      *string `json:"reason,omitempty"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type BusinessTripResult struct {
	Validation   conflict.ValidationResult `json:"validation"`
	BusinessTrip *BusinessTripResponse     `json:"business_trip,omitempty"`
}

func ToResponse(t BusinessTrip) BusinessTripResponse {
	return BusinessTripResponse{
		ID:          t.ID,
		EmployeeID:  t.EmployeeID,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		Destination: t.Destination,
		Status:      t.Status,
		Reason:      t.Reason,
		ReviewedBy:  t.ReviewedBy,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
