package conflict

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

const testEmployeeID = "0190a3c4-5b6d-7e8f-9a0b-1c2d3e4f5a6b"

func day(s string) time.Time {
	d, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func clockPtr(s string) *utils.Clock {
	c := utils.MustParseClock(s)
	return &c
}

func strPtr(s string) *string {
	return &s
}

func newSnapshot() Snapshot {
	return Snapshot{
		Employee: employee.Employee{
			ID:       testEmployeeID,
			FullName: "Giulia Rossi",
			HireDate: day("2020-01-01"),
		},
	}
}

func approvedTrip(start, end, destination string) trip.BusinessTrip {
	return trip.BusinessTrip{
		ID:          "trip-" + start,
		EmployeeID:  testEmployeeID,
		StartDate:   day(start),
		EndDate:     day(end),
		Destination: destination,
		Status:      trip.StatusApproved,
	}
}

func vacation(from, to string, status leave.Status) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "ferie-" + from,
		EmployeeID: testEmployeeID,
		Kind:       leave.KindVacation,
		Status:     status,
		DateFrom:   dayPtr(from),
		DateTo:     dayPtr(to),
	}
}

func permission(on string, from, to string, status leave.Status) leave.LeaveRequest {
	l := leave.LeaveRequest{
		ID:         "permesso-" + on + from,
		EmployeeID: testEmployeeID,
		Kind:       leave.KindPermission,
		Status:     status,
		Day:        dayPtr(on),
	}
	if from != "" {
		l.TimeFrom = clockPtr(from)
		l.TimeTo = clockPtr(to)
	}
	return l
}

func sickLeave(start, end, ref string) sickleave.SickLeave {
	s := sickleave.SickLeave{
		ID:         "malattia-" + start,
		EmployeeID: testEmployeeID,
		StartDate:  day(start),
		EndDate:    day(end),
	}
	if ref != "" {
		s.ReferenceCode = strPtr(ref)
	}
	return s
}

func worked(on string) attendance.Attendance {
	in := day(on).Add(9 * time.Hour)
	return attendance.Attendance{
		ID:         "presenza-" + on,
		EmployeeID: testEmployeeID,
		Date:       day(on),
		CheckIn:    &in,
		EntryKind:  attendance.EntryRegular,
	}
}
