package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
)

// ResolverInput is everything a check-in decision depends on. Now must already
// be in the company's time zone.
type ResolverInput struct {
	Snapshot  conflictsvc.Snapshot
	Now       time.Time
	Schedule  *schedule.WorkSchedule
	Geofence  *geofence.Config
	Latitude  *float64
	Longitude *float64
}

// Decision is the outcome of a check-in attempt. Nothing may be written unless
// Permitted is true.
type Decision struct {
	Permitted      bool
	Validation     conflict.ValidationResult
	IsBusinessTrip bool
	Geofence       geofence.Result
	Lateness       schedule.Lateness
}

// ResolveCheckIn applies the check-in guards in order: sick leave, vacation,
// full-day permission, hourly permission, existing attendance, geofence. The
// first failing guard decides.
func ResolveCheckIn(in ResolverInput) Decision {
	today := utils.TruncateDay(in.Now)
	activeTrip := tripOn(in.Snapshot, today)

	d := Decision{
		Validation:     conflict.Valid(),
		IsBusinessTrip: activeTrip != nil,
	}

	if v, blocked := checkInGate(in.Snapshot, in.Now); blocked {
		d.Validation = conflict.Rejected(v)
		return d
	}

	if !d.IsBusinessTrip && in.Geofence.Configured() && (in.Latitude == nil || in.Longitude == nil) {
		d.Validation = conflict.Rejected(conflict.Violation{
			Code:    conflict.CodeGeofenceViolation,
			Message: "Posizione non disponibile: impossibile verificare l'area consentita",
		})
		return d
	}

	if in.Latitude != nil && in.Longitude != nil {
		d.Geofence = geofence.Validate(in.Geofence, *in.Latitude, *in.Longitude, d.IsBusinessTrip)
	} else {
		d.Geofence = geofence.Result{IsValid: true}
	}
	if !d.Geofence.IsValid {
		d.Validation = conflict.Rejected(conflict.Violation{
			Code:    conflict.CodeGeofenceViolation,
			Message: d.Geofence.Message,
		})
		return d
	}

	d.Lateness = schedule.ComputeLateness(in.Schedule, in.Now)
	d.Permitted = true
	return d
}

// checkInGate runs the guards that depend on stored entries only.
func checkInGate(snap conflictsvc.Snapshot, now time.Time) (conflict.Violation, bool) {
	today := utils.TruncateDay(now)

	for _, s := range snap.SickLeaves {
		if s.Covers(today) {
			return conflictsvc.SickLeaveViolation(s), true
		}
	}

	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsVacation() && l.Covers(today) {
			return conflictsvc.VacationViolation(l), true
		}
	}

	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsFullDay() && l.Covers(today) {
			return conflictsvc.PermissionViolation(l), true
		}
	}

	// An hourly permission holds check-in back until its window has ended.
	for _, l := range snap.Leaves {
		if !l.IsApproved() || !l.IsPermission() || l.IsFullDay() || !l.Covers(today) {
			continue
		}
		if !now.After(l.TimeTo.On(now)) {
			return conflict.Violation{
				Code:     conflict.CodeTemporalConflict,
				Kind:     conflict.KindPermission,
				Severity: conflict.SeverityCritical,
				Message: fmt.Sprintf(
					"Permesso orario approvato (%s): l'ingresso è consentito dopo le %s",
					l.Window(), l.TimeTo.String(),
				),
			}, true
		}
	}

	for _, a := range snap.Attendance {
		if !a.IsBusinessTrip && utils.SameDay(a.Date, today) {
			return conflict.Violation{
				Code:     conflict.CodeDuplicateEntry,
				Kind:     conflict.KindAttendance,
				Severity: conflict.SeverityCritical,
				Message:  fmt.Sprintf("Presenza già registrata per il %s", utils.FormatDate(today)),
			}, true
		}
	}

	return conflict.Violation{}, false
}

func tripOn(snap conflictsvc.Snapshot, date time.Time) *trip.BusinessTrip {
	for i := range snap.Trips {
		if snap.Trips[i].IsApproved() && snap.Trips[i].Covers(date) {
			return &snap.Trips[i]
		}
	}
	return nil
}

// Status is the employee's state for the current day.
type Status struct {
	State          attendance.DayState
	IsWorkingDay   bool
	IsBusinessTrip bool
	CanCheckIn     bool
	CanCheckOut    bool
	Reason         string
	Violations     []conflict.Violation
	Today          *attendance.Attendance
}

// ResolveStatus reports where the employee stands today. An open check-in wins
// over a closed one; with no row for today the check-in guards decide between
// NoEntry and Blocked. Geofence is not evaluated since no position is known.
func ResolveStatus(snap conflictsvc.Snapshot, ws *schedule.WorkSchedule, now time.Time, checkoutEnabled bool) Status {
	today := utils.TruncateDay(now)
	st := Status{
		IsWorkingDay:   schedule.IsWorkingDay(ws, today, schedule.AssumeNonWorking),
		IsBusinessTrip: tripOn(snap, today) != nil,
	}

	var closed *attendance.Attendance
	for i := range snap.Attendance {
		a := &snap.Attendance[i]
		if !utils.SameDay(a.Date, today) || a.CheckIn == nil {
			continue
		}
		if a.IsOpen() {
			st.State = attendance.StateCheckedIn
			st.Today = a
			st.CanCheckOut = checkoutEnabled
			if !checkoutEnabled {
				st.Reason = attendance.ErrCheckoutDisabled.Error()
			}
			return st
		}
		if closed == nil {
			closed = a
		}
	}

	if v, blocked := checkInGate(snap, now); blocked {
		st.Violations = []conflict.Violation{v}
		st.Reason = v.Message
		st.State = attendance.StateBlocked
		if closed != nil && v.Code == conflict.CodeDuplicateEntry {
			st.State = attendance.StateCheckedOut
			st.Today = closed
		}
		return st
	}

	st.State = attendance.StateNoEntry
	if closed != nil {
		st.State = attendance.StateCheckedOut
		st.Today = closed
	}
	st.CanCheckIn = true
	return st
}
