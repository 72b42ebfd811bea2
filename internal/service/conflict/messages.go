package conflict

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

func dateRange(start, end time.Time) string {
	return utils.FormatDate(start) + " → " + utils.FormatDate(end)
}

func describeTrip(t trip.BusinessTrip) string {
	return fmt.Sprintf("Trasferta a %s (%s)", t.Destination, dateRange(t.StartDate, t.EndDate))
}

func describeVacation(l leave.LeaveRequest) string {
	start, end := l.Span()
	return fmt.Sprintf("Ferie approvate (%s)", dateRange(start, end))
}

func describePermission(l leave.LeaveRequest) string {
	return "Permesso " + l.Window()
}

func describeSickLeave(s sickleave.SickLeave) string {
	label := "Malattia"
	if s.ReferenceCode != nil && *s.ReferenceCode != "" {
		label += " " + *s.ReferenceCode
	}
	return fmt.Sprintf("%s (%s)", label, dateRange(s.StartDate, s.EndDate))
}

func describeAttendance(a attendance.Attendance) string {
	if a.IsManual {
		return "Presenza manuale"
	}
	return "Presenza registrata"
}

func temporal(kind conflict.Kind, message string) conflict.Violation {
	return conflict.Violation{
		Code:     conflict.CodeTemporalConflict,
		Kind:     kind,
		Severity: conflict.SeverityCritical,
		Message:  message,
	}
}

// TripViolation names the trip's destination and date range.
func TripViolation(t trip.BusinessTrip) conflict.Violation {
	return temporal(conflict.KindBusinessTrip, fmt.Sprintf(
		"Conflitto con trasferta a %s (%s)", t.Destination, dateRange(t.StartDate, t.EndDate),
	))
}

func VacationViolation(l leave.LeaveRequest) conflict.Violation {
	start, end := l.Span()
	return temporal(conflict.KindVacation, fmt.Sprintf("Conflitto con ferie approvate (%s)", dateRange(start, end)))
}

// PermissionViolation names the permission day and its window, or "giornaliero".
func PermissionViolation(l leave.LeaveRequest) conflict.Violation {
	day, _ := l.Span()
	return temporal(conflict.KindPermission, fmt.Sprintf(
		"Conflitto con permesso approvato del %s (%s)", utils.FormatDate(day), l.Window(),
	))
}

// SickLeaveViolation names the reference code when present and the sick-leave dates.
func SickLeaveViolation(s sickleave.SickLeave) conflict.Violation {
	label := "malattia"
	if s.ReferenceCode != nil && *s.ReferenceCode != "" {
		label += " " + *s.ReferenceCode
	}
	return temporal(conflict.KindSickLeave, fmt.Sprintf("Conflitto con %s (%s)", label, dateRange(s.StartDate, s.EndDate)))
}

func AttendanceViolation(a attendance.Attendance) conflict.Violation {
	what := "presenza già registrata"
	if a.IsManual {
		what = "presenza manuale registrata"
	}
	return temporal(conflict.KindAttendance, fmt.Sprintf("Conflitto con %s il %s", what, utils.FormatDate(a.Date)))
}

// HireDateViolation rejects a date that precedes the employee's hire date.
func HireDateViolation(date, hireDate time.Time) conflict.Violation {
	return conflict.Violation{
		Code:     conflict.CodeHireDateViolation,
		Severity: conflict.SeverityCritical,
		Message: fmt.Sprintf(
			"La data %s è precedente alla data di assunzione (%s)",
			utils.FormatDate(date), utils.FormatDate(hireDate),
		),
	}
}

// DuplicateViolation reports an entry that storage already holds for date.
func DuplicateViolation(kind conflict.Kind, date time.Time) conflict.Violation {
	return conflict.Violation{
		Code:     conflict.CodeDuplicateEntry,
		Kind:     kind,
		Severity: conflict.SeverityCritical,
		Message:  fmt.Sprintf("Esiste già una registrazione per il %s", utils.FormatDate(date)),
	}
}
