package leave

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// Kind distinguishes a multi-day vacation from a single-day permission.
type Kind string

const (
	KindVacation   Kind = "ferie"
	KindPermission Kind = "permesso"
)

var KindValues = []string{string(KindVacation), string(KindPermission)}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// LeaveRequest is either a vacation over [DateFrom, DateTo] or a permission on
// Day, optionally restricted to [TimeFrom, TimeTo].
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Kind       Kind
	Status     Status

	// Vacation
	DateFrom *time.Time
	DateTo   *time.Time

	// Permission
	Day      *time.Time
	TimeFrom *utils.Clock
	TimeTo   *utils.Clock

	Reason     *string
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l LeaveRequest) IsApproved() bool {
	return l.Status == StatusApproved
}

func (l LeaveRequest) IsVacation() bool {
	return l.Kind == KindVacation
}

func (l LeaveRequest) IsPermission() bool {
	return l.Kind == KindPermission
}

// IsFullDay reports whether a permission carries no time window.
func (l LeaveRequest) IsFullDay() bool {
	return l.IsPermission() && (l.TimeFrom == nil || l.TimeTo == nil)
}

// Span returns the inclusive date range the request occupies.
func (l LeaveRequest) Span() (start, end time.Time) {
	if l.IsPermission() {
		if l.Day == nil {
			return time.Time{}, time.Time{}
		}
		return *l.Day, *l.Day
	}
	if l.DateFrom == nil || l.DateTo == nil {
		return time.Time{}, time.Time{}
	}
	return *l.DateFrom, *l.DateTo
}

// Covers reports whether date falls inside the request's span.
func (l LeaveRequest) Covers(date time.Time) bool {
	start, end := l.Span()
	if start.IsZero() {
		return false
	}
	return utils.DateInRange(date, start, end)
}

// Window formats a permission's time window as HH:MM-HH:MM, or "giornaliero"
// for a full-day permission.
func (l LeaveRequest) Window() string {
	if l.IsFullDay() {
		return "giornaliero"
	}
	return l.TimeFrom.String() + "-" + l.TimeTo.String()
}
