package attendance

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string   `json:"-" validate:"required"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Notes      *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (r *CheckInRequest) Validate() error {
	errs := validator.Struct(r)

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be sent together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"-" validate:"required"`
}

func (r *CheckOutRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Date       string  `json:"date" validate:"required,date"`
	CheckIn    *string `json:"check_in,omitempty" validate:"omitempty,clock"`
	CheckOut   *string `json:"check_out,omitempty" validate:"omitempty,clock"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	CreatedBy  *string `json:"-"`
}

func (r *ManualAttendanceRequest) Validate() error {
	errs := validator.Struct(r)

	if len(errs) == 0 && r.CheckIn != nil && r.CheckOut != nil {
		in, _ := utils.ParseClock(*r.CheckIn)
		out, _ := utils.ParseClock(*r.CheckOut)
		if !in.Before(out) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be after check_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds a manual row with instants placed on Date in loc.
func (r *ManualAttendanceRequest) ToEntity(loc *time.Location) Attendance {
	date, _ := utils.ParseDate(r.Date)
	a := Attendance{
		EmployeeID: r.EmployeeID,
		Date:       date,
		EntryKind:  EntryManual,
		IsManual:   true,
		Notes:      r.Notes,
		CreatedBy:  r.CreatedBy,
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if c := utils.ParseClockPtr(r.CheckIn); c != nil {
		t := c.On(day)
		a.CheckIn = &t
	}
	if c := utils.ParseClockPtr(r.CheckOut); c != nil {
		t := c.On(day)
		a.CheckOut = &t
	}
	return a
}

type ListAttendanceRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  string  `json:"start_date" validate:"required,date"`
	EndDate    string  `json:"end_date" validate:"required,date"`
}

func (r *ListAttendanceRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) == 0 {
		errs = append(errs, conflict.CheckDateOrder("end_date", r.StartDate, r.EndDate)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	Date           string    `json:"date"`
	CheckIn        *string   `json:"check_in,omitempty"`
	CheckOut       *string   `json:"check_out,omitempty"`
	EntryKind      EntryKind `json:"entry_kind"`
	IsManual       bool      `json:"is_manual"`
	IsBusinessTrip bool      `json:"is_business_trip"`
	IsSickLeave    bool      `json:"is_sick_leave"`
	IsLate         bool      `json:"is_late"`
	LateMinutes    int       `json:"late_minutes"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	WorkedHours    *string   `json:"worked_hours,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	res := AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Date:           utils.FormatDate(a.Date),
		EntryKind:      a.Kind(),
		IsManual:       a.IsManual,
		IsBusinessTrip: a.IsBusinessTrip,
		IsSickLeave:    a.IsSickLeave,
		IsLate:         a.IsLate,
		LateMinutes:    a.LateMinutes,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Notes:          a.Notes,
	}
	if a.CheckIn != nil {
		s := a.CheckIn.Format(time.RFC3339)
		res.CheckIn = &s
	}
	if a.CheckOut != nil {
		s := a.CheckOut.Format(time.RFC3339)
		res.CheckOut = &s
	}
	if a.WorkedHours != nil {
		s := a.WorkedHours.StringFixed(2)
		res.WorkedHours = &s
	}
	return res
}

type CheckInResult struct {
	Validation     conflict.ValidationResult `json:"validation"`
	Attendance     *AttendanceResponse       `json:"attendance,omitempty"`
	DistanceMeters *float64                  `json:"distance_meters,omitempty"`
}

type ManualAttendanceResult struct {
	Validation conflict.ValidationResult `json:"validation"`
	Attendance *AttendanceResponse       `json:"attendance,omitempty"`
}

// DayState is the employee's position in the NoEntry -> CheckedIn -> CheckedOut
// progression, or Blocked when check-in is currently not permitted.
type DayState string

const (
	StateNoEntry    DayState = "no_entry"
	StateCheckedIn  DayState = "checked_in"
	StateCheckedOut DayState = "checked_out"
	StateBlocked    DayState = "blocked"
)

type TodayStatusResponse struct {
	Date               string               `json:"date"`
	State              DayState             `json:"state"`
	IsWorkingDay       bool                 `json:"is_working_day"`
	IsBusinessTrip     bool                 `json:"is_business_trip"`
	CanCheckIn         bool                 `json:"can_check_in"`
	CanCheckOut        bool                 `json:"can_check_out"`
	CheckoutEnabled    bool                 `json:"checkout_enabled"`
	Reason             string               `json:"reason,omitempty"`
	Violations         []conflict.Violation `json:"violations,omitempty"`
	Attendance         *AttendanceResponse  `json:"attendance,omitempty"`
	TrackedWorkingDays int                  `json:"tracked_working_days"`
}
