package schedule

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// WorkSchedule is the company-wide working timetable. There is at most one.
type WorkSchedule struct {
	ID               string
	StartTime        utils.Clock
	EndTime          utils.Clock
	ToleranceMinutes int
	// WorkingDays is indexed by time.Weekday: 0 = Sunday ... 6 = Saturday.
	WorkingDays [7]bool
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultPolicy is what a calendar lookup answers when no WorkSchedule is configured.
type DefaultPolicy int

const (
	// AssumeWorking treats every day as a working day. Used when blocking dates preventively.
	AssumeWorking DefaultPolicy = iota
	// AssumeNonWorking treats no day as a working day. Used when computing lateness and today's status.
	AssumeNonWorking
)

// Lateness is the outcome of comparing a check-in against the schedule.
type Lateness struct {
	IsLate      bool `json:"is_late"`
	LateMinutes int  `json:"late_minutes"`
}

var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
