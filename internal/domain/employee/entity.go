package employee

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

type Employee struct {
	ID                  string
	FullName            string
	HireDate            time.Time
	TrackingStartPolicy TrackingStartPolicy
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TrackingStartPolicy decides from which date absence accounting begins.
type TrackingStartPolicy string

const (
	TrackingFromHireDate  TrackingStartPolicy = "from_hire_date"
	TrackingFromYearStart TrackingStartPolicy = "from_year_start"
)

var TrackingStartPolicyValues = []string{
	string(TrackingFromHireDate),
	string(TrackingFromYearStart),
}

// TrackingStart returns the first accounted date for the year of asOf.
// Accounting never starts before the hire date.
func (e Employee) TrackingStart(asOf time.Time) time.Time {
	hire := utils.TruncateDay(e.HireDate)
	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	switch e.TrackingStartPolicy {
	case TrackingFromYearStart:
		if hire.After(yearStart) {
			return hire
		}
		return yearStart
	default:
		return hire
	}
}

// HiredBy reports whether the employee is already employed on date.
func (e Employee) HiredBy(date time.Time) bool {
	return !utils.TruncateDay(date).Before(utils.TruncateDay(e.HireDate))
}
