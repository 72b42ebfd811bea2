package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	svc      *AttendanceServiceImpl
	tx       *passthroughTx
	loader   *stubLoader
	rows     *fakeAttendanceRepo
	schedule *fakeScheduleRepo
	geofence *fakeGeofenceRepo
}

func newServiceFixture(now time.Time) *serviceFixture {
	f := &serviceFixture{
		tx:       &passthroughTx{},
		loader:   &stubLoader{snap: baseSnapshot()},
		rows:     &fakeAttendanceRepo{},
		schedule: &fakeScheduleRepo{ws: weekdaySchedule()},
		geofence: &fakeGeofenceRepo{cfg: companyGeofence()},
	}
	f.svc = NewAttendanceService(f.tx, f.rows, f.schedule, f.geofence, f.loader, rome).
		WithClock(func() time.Time { return now.UTC() })
	return f
}

// ===== CHECK-IN =====

func TestAttendanceService_CheckIn_Success(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:25:00"))

	res, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.001),
		Longitude:  floatPtr(9.0),
	})

	require.NoError(t, err)
	assert.True(t, res.Validation.IsValid)
	require.NotNil(t, res.Attendance)
	assert.Equal(t, "2024-06-12", res.Attendance.Date)
	assert.Equal(t, attendance.EntryRegular, res.Attendance.EntryKind)
	assert.True(t, res.Attendance.IsLate)
	assert.Equal(t, 15, res.Attendance.LateMinutes)
	require.NotNil(t, res.DistanceMeters)
	assert.InDelta(t, 111.19, *res.DistanceMeters, 0.1)
	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.rows.created, 1)
}

func TestAttendanceService_CheckIn_RejectedWritesNothing(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))
	f.loader.snap.SickLeaves = append(f.loader.snap.SickLeaves, sick("2024-06-11", "2024-06-13"))

	res, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.0),
		Longitude:  floatPtr(9.0),
	})

	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	assert.Nil(t, res.Attendance)
	assert.Empty(t, f.rows.created)
}

func TestAttendanceService_CheckIn_BusinessTrip(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))
	f.loader.snap.Trips = append(f.loader.snap.Trips, approvedTrip("2024-06-10", "2024-06-14"))

	res, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.46),
		Longitude:  floatPtr(9.19),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Attendance)
	assert.Equal(t, attendance.EntryBusinessTrip, res.Attendance.EntryKind)
	assert.True(t, res.Attendance.IsBusinessTrip)
}

func TestAttendanceService_CheckIn_UniqueViolationIsDuplicateEntry(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))
	f.rows.createErr = attendance.ErrDuplicateEntry

	res, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.0),
		Longitude:  floatPtr(9.0),
	})

	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	require.Len(t, res.Validation.Violations, 1)
	assert.Equal(t, conflict.CodeDuplicateEntry, res.Validation.Violations[0].Code)
}

func TestAttendanceService_CheckIn_StorageFailure(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))
	f.schedule.err = errors.New("connection reset by peer")

	_, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.0),
		Longitude:  floatPtr(9.0),
	})

	assert.ErrorIs(t, err, conflict.ErrStorageUnavailable)
	assert.Empty(t, f.rows.created)
}

func TestAttendanceService_CheckIn_CreateFailureIsStorageError(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))
	f.rows.createErr = errors.New("disk full")

	_, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(45.0),
		Longitude:  floatPtr(9.0),
	})

	assert.ErrorIs(t, err, conflict.ErrStorageUnavailable)
}

func TestAttendanceService_CheckIn_Validation(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 09:00:00"))

	_, err := f.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: testEmployeeID,
		Latitude:   floatPtr(95.0),
		Longitude:  floatPtr(9.0),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "latitude", verrs[0].Field)
	assert.Equal(t, 0, f.tx.calls)
}

// ===== CHECK-OUT =====

func openRow(checkIn time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:         "att-1",
		EmployeeID: testEmployeeID,
		Date:       day(checkIn.Format("2006-01-02")),
		CheckIn:    &checkIn,
		EntryKind:  attendance.EntryRegular,
	}
}

func TestAttendanceService_CheckOut_Success(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 17:30:00"))
	f.rows.rows = append(f.rows.rows, openRow(at("2024-06-12 09:00:00")))

	res, err := f.svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: testEmployeeID})

	require.NoError(t, err)
	require.NotNil(t, res.CheckOut)
	require.NotNil(t, res.WorkedHours)
	assert.Equal(t, "8.50", *res.WorkedHours)
}

func TestAttendanceService_CheckOut_Disabled(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 17:30:00"))
	f.geofence.cfg.CheckoutEnabled = false
	f.rows.rows = append(f.rows.rows, openRow(at("2024-06-12 09:00:00")))

	_, err := f.svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: testEmployeeID})

	assert.ErrorIs(t, err, attendance.ErrCheckoutDisabled)
}

func TestAttendanceService_CheckOut_NotCheckedIn(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 17:30:00"))
	f.rows.rows = append(f.rows.rows, openRow(at("2024-06-11 09:00:00")))

	_, err := f.svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: testEmployeeID})

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestWorkedHours(t *testing.T) {
	in := at("2024-06-12 09:00:00")

	assert.Equal(t, "7.75", workedHours(in, in.Add(7*time.Hour+45*time.Minute)).StringFixed(2))
	assert.Equal(t, "0.33", workedHours(in, in.Add(20*time.Minute)).StringFixed(2))
	assert.Equal(t, "0.00", workedHours(in, in.Add(-time.Minute)).StringFixed(2))
}

// ===== STATUS =====

func TestAttendanceService_GetTodayStatus_TrackedWorkingDays(t *testing.T) {
	f := newServiceFixture(at("2024-03-08 10:00:00"))
	f.loader.snap.Employee.HireDate = day("2024-03-04")

	res, err := f.svc.GetTodayStatus(context.Background(), testEmployeeID)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", res.Date)
	assert.Equal(t, attendance.StateNoEntry, res.State)
	assert.True(t, res.CanCheckIn)
	assert.True(t, res.CheckoutEnabled)
	assert.Equal(t, 5, res.TrackedWorkingDays)
}

func TestAttendanceService_GetTodayStatus_FromYearStartWithoutSchedule(t *testing.T) {
	f := newServiceFixture(at("2024-01-10 10:00:00"))
	f.schedule.ws = nil
	f.geofence.cfg = nil
	f.loader.snap.Employee.TrackingStartPolicy = employee.TrackingFromYearStart

	res, err := f.svc.GetTodayStatus(context.Background(), testEmployeeID)

	require.NoError(t, err)
	assert.False(t, res.IsWorkingDay)
	assert.True(t, res.CheckoutEnabled)
	assert.Equal(t, 10, res.TrackedWorkingDays)
}

func TestAttendanceService_GetTodayStatus_EmployeeNotFound(t *testing.T) {
	f := newServiceFixture(at("2024-01-10 10:00:00"))
	f.loader.err = employee.ErrEmployeeNotFound

	_, err := f.svc.GetTodayStatus(context.Background(), testEmployeeID)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== MANUAL ENTRY =====

func TestAttendanceService_CreateManualAttendance(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 10:00:00"))
	checkIn, checkOut := "08:30", "17:00"

	res, err := f.svc.CreateManualAttendance(context.Background(), attendance.ManualAttendanceRequest{
		EmployeeID: testEmployeeID,
		Date:       "2024-06-10",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})

	require.NoError(t, err)
	assert.True(t, res.Validation.IsValid)
	require.NotNil(t, res.Attendance)
	assert.True(t, res.Attendance.IsManual)
	assert.Equal(t, attendance.EntryManual, res.Attendance.EntryKind)
	require.NotNil(t, res.Attendance.CheckIn)
	assert.Equal(t, "2024-06-10T08:30:00+01:00", *res.Attendance.CheckIn)
}

func TestAttendanceService_CreateManualAttendance_OnVacation(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 10:00:00"))
	f.loader.snap.Leaves = append(f.loader.snap.Leaves, approvedVacation("2024-06-10", "2024-06-11"))

	res, err := f.svc.CreateManualAttendance(context.Background(), attendance.ManualAttendanceRequest{
		EmployeeID: testEmployeeID,
		Date:       "2024-06-10",
	})

	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	assert.Empty(t, f.rows.created)
}

// ===== LIST / DELETE =====

func TestAttendanceService_ListAndDelete(t *testing.T) {
	f := newServiceFixture(at("2024-06-12 10:00:00"))
	f.rows.rows = append(f.rows.rows, openRow(at("2024-06-11 09:00:00")), openRow(at("2024-05-02 09:00:00")))
	f.rows.rows[1].ID = "att-2"

	list, err := f.svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "att-1", list[0].ID)

	require.NoError(t, f.svc.DeleteAttendance(context.Background(), "att-1"))
	assert.ErrorIs(t, f.svc.DeleteAttendance(context.Background(), "att-1"), attendance.ErrAttendanceNotFound)
}
