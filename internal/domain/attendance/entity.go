package attendance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind records how an attendance row came to exist.
type EntryKind string

const (
	EntryRegular      EntryKind = "regular"
	EntryManual       EntryKind = "manual"
	EntryBusinessTrip EntryKind = "business_trip"
	EntrySickLeave    EntryKind = "sick_leave"
	EntryVacation     EntryKind = "vacation"
	EntryPermission   EntryKind = "permission"
)

type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	CheckIn        *time.Time
	CheckOut       *time.Time
	EntryKind      EntryKind
	IsManual       bool
	IsBusinessTrip bool
	IsSickLeave    bool
	IsLate         bool
	LateMinutes    int
	Latitude       *float64
	Longitude      *float64
	WorkedHours    *decimal.Decimal
	Notes          *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Kind returns the stored entry kind, classifying legacy rows that predate it.
func (a Attendance) Kind() EntryKind {
	if a.EntryKind != "" {
		return a.EntryKind
	}
	notes := ""
	if a.Notes != nil {
		notes = *a.Notes
	}
	return ClassifyLegacyNotes(notes, a.IsManual, a.IsBusinessTrip, a.IsSickLeave)
}

// IsOpen reports whether the row has a check-in without a check-out.
func (a Attendance) IsOpen() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}

// ClassifyLegacyNotes derives an EntryKind for rows written before entry_kind
// existed, when the kind was only recoverable from flags and free-text notes.
func ClassifyLegacyNotes(notes string, isManual, isBusinessTrip, isSickLeave bool) EntryKind {
	switch {
	case isSickLeave:
		return EntrySickLeave
	case isBusinessTrip:
		return EntryBusinessTrip
	}

	lower := strings.ToLower(notes)
	switch {
	case strings.Contains(lower, "ferie"):
		return EntryVacation
	case strings.Contains(lower, "permesso"):
		return EntryPermission
	case isManual:
		return EntryManual
	default:
		return EntryRegular
	}
}
