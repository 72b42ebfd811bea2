package trip

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// BusinessTrip (trasferta) suppresses geofence checks while approved.
type BusinessTrip struct {
	ID          string
	EmployeeID  string
	StartDate   time.Time
	EndDate     time.Time
	Destination string
	Status      Status
	Reason      *string
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t BusinessTrip) IsApproved() bool {
	return t.Status == StatusApproved
}

func (t BusinessTrip) Covers(date time.Time) bool {
	return utils.DateInRange(date, t.StartDate, t.EndDate)
}
