package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
)

const testEmployeeID = "0190a3c4-5b6d-7e8f-9a0b-1c2d3e4f5a6b"

var rome = time.FixedZone("CET", 3600)

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, rome)
	if err != nil {
		panic(err)
	}
	return t
}

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

func floatPtr(f float64) *float64 {
	return &f
}

// weekdaySchedule is 09:00-18:00, Monday to Friday, with a 10 minute tolerance.
func weekdaySchedule() *schedule.WorkSchedule {
	return &schedule.WorkSchedule{
		ID:               "ws-1",
		StartTime:        utils.MustParseClock("09:00"),
		EndTime:          utils.MustParseClock("18:00"),
		ToleranceMinutes: 10,
		WorkingDays:      [7]bool{false, true, true, true, true, true, false},
	}
}

func companyGeofence() *geofence.Config {
	return &geofence.Config{
		Latitude:        floatPtr(45.0),
		Longitude:       floatPtr(9.0),
		RadiusMeters:    500,
		CheckoutEnabled: true,
	}
}

func baseSnapshot() conflictsvc.Snapshot {
	return conflictsvc.Snapshot{
		Employee: employee.Employee{
			ID:                  testEmployeeID,
			FullName:            "Marco Bianchi",
			HireDate:            day("2020-01-01"),
			TrackingStartPolicy: employee.TrackingFromHireDate,
		},
	}
}

func hourlyPermission(on, from, to string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "permesso-1",
		EmployeeID: testEmployeeID,
		Kind:       leave.KindPermission,
		Status:     leave.StatusApproved,
		Day:        dayPtr(on),
		TimeFrom:   clockPtr(from),
		TimeTo:     clockPtr(to),
	}
}

func approvedVacation(from, to string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "ferie-1",
		EmployeeID: testEmployeeID,
		Kind:       leave.KindVacation,
		Status:     leave.StatusApproved,
		DateFrom:   dayPtr(from),
		DateTo:     dayPtr(to),
	}
}

func sick(from, to string) sickleave.SickLeave {
	ref := "INPS-2024-11"
	return sickleave.SickLeave{
		ID:            "malattia-1",
		EmployeeID:    testEmployeeID,
		StartDate:     day(from),
		EndDate:       day(to),
		ReferenceCode: &ref,
	}
}

func approvedTrip(from, to string) trip.BusinessTrip {
	return trip.BusinessTrip{
		ID:          "trip-1",
		EmployeeID:  testEmployeeID,
		StartDate:   day(from),
		EndDate:     day(to),
		Destination: "Milano",
		Status:      trip.StatusApproved,
	}
}

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type stubLoader struct {
	snap conflictsvc.Snapshot
	err  error
}

func (s *stubLoader) Load(ctx context.Context, employeeID string) (conflictsvc.Snapshot, error) {
	return s.snap, s.err
}

type fakeScheduleRepo struct {
	ws  *schedule.WorkSchedule
	err error
}

func (f *fakeScheduleRepo) Get(ctx context.Context) (schedule.WorkSchedule, error) {
	if f.err != nil {
		return schedule.WorkSchedule{}, f.err
	}
	if f.ws == nil {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	return *f.ws, nil
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	f.ws = &ws
	return ws, nil
}

type fakeGeofenceRepo struct {
	cfg *geofence.Config
	err error
}

func (f *fakeGeofenceRepo) Get(ctx context.Context) (geofence.Config, error) {
	if f.err != nil {
		return geofence.Config{}, f.err
	}
	if f.cfg == nil {
		return geofence.Config{}, geofence.ErrGeofenceNotFound
	}
	return *f.cfg, nil
}

func (f *fakeGeofenceRepo) Upsert(ctx context.Context, cfg geofence.Config) (geofence.Config, error) {
	f.cfg = &cfg
	return cfg, nil
}

type fakeAttendanceRepo struct {
	rows      []attendance.Attendance
	createErr error
	created   []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if f.createErr != nil {
		return attendance.Attendance{}, f.createErr
	}
	a.ID = "att-new"
	f.created = append(f.created, a)
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, employeeID *string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if employeeID != nil && a.EmployeeID != *employeeID {
			continue
		}
		if utils.DateInRange(a.Date, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && utils.SameDay(a.Date, date) && a.IsOpen() {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) UpdateCheckOut(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for i := range f.rows {
		if f.rows[i].ID == a.ID {
			f.rows[i] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}
