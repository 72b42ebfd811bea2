package sickleave

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// SickLeave is a registered illness period. It is effective from the moment
// it is stored; there is no approval step.
type SickLeave struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	ReferenceCode *string
	Notes         *string
	CreatedBy     *string
	CreatedAt     time.Time
}

func (s SickLeave) Covers(date time.Time) bool {
	return utils.DateInRange(date, s.StartDate, s.EndDate)
}
