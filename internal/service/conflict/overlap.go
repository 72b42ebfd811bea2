package conflict

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

// CheckHireDate rejects a candidate range that starts or ends before the hire
// date. An employee without a recorded hire date is not checked.
func CheckHireDate(emp employee.Employee, start, end time.Time) conflict.ValidationResult {
	res := conflict.Valid()
	if emp.HireDate.IsZero() {
		return res
	}

	earliest := start
	if end.Before(start) {
		earliest = end
	}
	if !emp.HiredBy(earliest) {
		res.Add(HireDateViolation(utils.TruncateDay(earliest), utils.TruncateDay(emp.HireDate)))
	}
	return res
}

// ValidateVacationRange rejects a vacation overlapping an approved trip,
// another approved vacation or any sick leave.
func ValidateVacationRange(snap Snapshot, start, end time.Time) conflict.ValidationResult {
	res := CheckHireDate(snap.Employee, start, end)

	for _, t := range snap.Trips {
		if t.IsApproved() && utils.RangesOverlap(start, end, t.StartDate, t.EndDate) {
			res.Add(TripViolation(t))
		}
	}
	for _, l := range snap.Leaves {
		if !l.IsApproved() || !l.IsVacation() {
			continue
		}
		from, to := l.Span()
		if utils.RangesOverlap(start, end, from, to) {
			res.Add(VacationViolation(l))
		}
	}
	for _, s := range snap.SickLeaves {
		if utils.RangesOverlap(start, end, s.StartDate, s.EndDate) {
			res.Add(SickLeaveViolation(s))
		}
	}

	return res
}

// ValidatePermission rejects a permission on a day covered by an approved trip,
// an approved vacation or a sick leave. Other permissions on the same day never
// conflict, so the candidate window does not change the outcome.
func ValidatePermission(snap Snapshot, day time.Time, timeFrom, timeTo *utils.Clock) conflict.ValidationResult {
	res := CheckHireDate(snap.Employee, day, day)

	for _, t := range snap.Trips {
		if t.IsApproved() && t.Covers(day) {
			res.Add(TripViolation(t))
		}
	}
	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsVacation() && l.Covers(day) {
			res.Add(VacationViolation(l))
		}
	}
	for _, s := range snap.SickLeaves {
		if s.Covers(day) {
			res.Add(SickLeaveViolation(s))
		}
	}

	return res
}

// ValidateSickLeaveRange rejects a sick leave overlapping an approved trip, an
// approved vacation or a worked day. A nil end means a single-day sick leave.
// Other sick leaves and permissions are not checked.
func ValidateSickLeaveRange(snap Snapshot, start time.Time, end *time.Time) conflict.ValidationResult {
	last := start
	if end != nil {
		last = *end
	}
	res := CheckHireDate(snap.Employee, start, last)

	for _, t := range snap.Trips {
		if t.IsApproved() && utils.RangesOverlap(start, last, t.StartDate, t.EndDate) {
			res.Add(TripViolation(t))
		}
	}
	for _, l := range snap.Leaves {
		if !l.IsApproved() || !l.IsVacation() {
			continue
		}
		from, to := l.Span()
		if utils.RangesOverlap(start, last, from, to) {
			res.Add(VacationViolation(l))
		}
	}
	for _, a := range snap.Attendance {
		if countsAsWorked(a) && utils.DateInRange(a.Date, start, last) {
			res.Add(AttendanceViolation(a))
		}
	}

	return res
}

// ValidateAttendanceEntry rejects an attendance on a day covered by an approved
// trip, an approved vacation, a sick leave or an approved full-day permission.
// Hourly permissions and existing attendance rows do not reject; duplicates are
// left to the storage uniqueness constraint.
func ValidateAttendanceEntry(snap Snapshot, date time.Time) conflict.ValidationResult {
	res := CheckHireDate(snap.Employee, date, date)

	for _, t := range snap.Trips {
		if t.IsApproved() && t.Covers(date) {
			res.Add(TripViolation(t))
		}
	}
	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsVacation() && l.Covers(date) {
			res.Add(VacationViolation(l))
		}
	}
	for _, s := range snap.SickLeaves {
		if s.Covers(date) {
			res.Add(SickLeaveViolation(s))
		}
	}
	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsFullDay() && l.Covers(date) {
			res.Add(PermissionViolation(l))
		}
	}

	return res
}
