package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

// ===== TYPE MAPPING TESTS =====

func TestClockRoundTrip(t *testing.T) {
	c := utils.MustParseClock("09:10:30")

	pg := clockToTime(c)

	assert.True(t, pg.Valid)
	assert.Equal(t, int64(33030)*1_000_000, pg.Microseconds)
	assert.Equal(t, c, timeToClock(pg))
	assert.Nil(t, timeToClockPtr(pgtype.Time{}))
	assert.False(t, clockPtrToTime(nil).Valid)
}

func TestWeekdayArrays(t *testing.T) {
	days := [7]bool{false, true, true, true, true, true, false}

	arr := weekdaysToArray(days)

	assert.Equal(t, []int32{1, 2, 3, 4, 5}, arr)
	assert.Equal(t, days, arrayToWeekdays(arr))
	assert.Equal(t, [7]bool{true}, arrayToWeekdays([]int32{0, 9, -1}))
}

func TestNullDecimal(t *testing.T) {
	assert.False(t, nullDecimal(nil).Valid)
	assert.Nil(t, decimalPtr(decimal.NullDecimal{}))

	d := decimal.RequireFromString("8.50")
	got := decimalPtr(nullDecimal(&d))
	require.NotNil(t, got)
	assert.True(t, d.Equal(*got))
}

func TestNewID_IsVersion7(t *testing.T) {
	id := newID()

	assert.Len(t, id, 36)
	assert.Equal(t, byte('7'), id[14])
	assert.NotEqual(t, id, newID())
}

// ===== SCAN TESTS =====

func TestScanWorkSchedule(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	row := stubRow{scanFn: func(dest ...interface{}) error {
		require.Len(t, dest, 8)
		*(dest[0].(*string)) = "ws-1"
		*(dest[1].(*pgtype.Time)) = clockToTime(utils.MustParseClock("09:00"))
		*(dest[2].(*pgtype.Time)) = clockToTime(utils.MustParseClock("18:00"))
		*(dest[3].(*int)) = 10
		*(dest[4].(*[]int32)) = []int32{1, 2, 3, 4, 5}
		*(dest[6].(*time.Time)) = now
		*(dest[7].(*time.Time)) = now
		return nil
	}}

	ws, err := scanWorkSchedule(row)

	require.NoError(t, err)
	assert.Equal(t, "09:00", ws.StartTime.String())
	assert.Equal(t, "18:00", ws.EndTime.String())
	assert.Equal(t, 10, ws.ToleranceMinutes)
	assert.True(t, ws.WorkingDays[time.Monday])
	assert.False(t, ws.WorkingDays[time.Saturday])
}

func TestScanAttendance_LegacyRowWithoutKind(t *testing.T) {
	notes := "Ferie estive"
	row := stubRow{scanFn: func(dest ...interface{}) error {
		require.Len(t, dest, 18)
		*(dest[0].(*string)) = "att-1"
		*(dest[5].(**string)) = nil
		*(dest[6].(*bool)) = true
		*(dest[13].(*decimal.NullDecimal)) = decimal.NullDecimal{Decimal: decimal.RequireFromString("7.25"), Valid: true}
		*(dest[14].(**string)) = &notes
		return nil
	}}

	att, err := scanAttendance(row)

	require.NoError(t, err)
	assert.Equal(t, attendance.EntryKind(""), att.EntryKind)
	assert.Equal(t, attendance.EntryVacation, att.Kind())
	require.NotNil(t, att.WorkedHours)
	assert.Equal(t, "7.25", att.WorkedHours.StringFixed(2))
}

func TestScanLeaveRequest_Permission(t *testing.T) {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	row := stubRow{scanFn: func(dest ...interface{}) error {
		require.Len(t, dest, 14)
		*(dest[0].(*string)) = "lr-1"
		*(dest[2].(*leave.Kind)) = leave.KindPermission
		*(dest[3].(*leave.Status)) = leave.StatusApproved
		*(dest[6].(**time.Time)) = &day
		*(dest[7].(*pgtype.Time)) = clockToTime(utils.MustParseClock("13:00"))
		*(dest[8].(*pgtype.Time)) = clockToTime(utils.MustParseClock("15:00"))
		return nil
	}}

	l, err := scanLeaveRequest(row)

	require.NoError(t, err)
	assert.True(t, l.IsPermission())
	assert.False(t, l.IsFullDay())
	assert.Equal(t, "13:00-15:00", l.Window())
}

func TestScanErrorsPropagate(t *testing.T) {
	row := stubRow{scanFn: func(dest ...interface{}) error { return pgx.ErrNoRows }}

	_, err := scanLeaveRequest(row)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = scanAttendance(row)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = scanWorkSchedule(row)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

// ===== REPOSITORY TESTS =====

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`FROM employees`).
		WithArgs("emp-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "emp-1")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkScheduleRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkScheduleRepository(db)

	mock.ExpectQuery(`FROM work_schedules`).WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeofenceConfigRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGeofenceConfigRepository(db)

	mock.ExpectQuery(`FROM geofence_configs`).WillReturnError(pgx.ErrNoRows)
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, geofence.ErrGeofenceNotFound)

	mock.ExpectQuery(`FROM geofence_configs`).WillReturnError(errors.New("connection reset"))
	_, err = repo.Get(context.Background())
	assert.ErrorContains(t, err, "failed to get geofence config")
	assert.NotErrorIs(t, err, geofence.ErrGeofenceNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSickLeaveRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSickLeaveRepository(db)
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO sick_leaves`).
		WithArgs(pgxmock.AnyArg(), "emp-1", start, start, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), sickleave.SickLeave{EmployeeID: "emp-1", StartDate: start, EndDate: start})

	assert.ErrorIs(t, err, sickleave.ErrDuplicateSickLeave)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	args := []interface{}{pgxmock.AnyArg(), "emp-1", date, pgxmock.AnyArg(), pgxmock.AnyArg(), string(attendance.EntryRegular)}
	for i := 0; i < 10; i++ {
		args = append(args, pgxmock.AnyArg())
	}
	mock.ExpectQuery(`INSERT INTO attendances`).
		WithArgs(args...).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		EntryKind:  attendance.EntryRegular,
	})

	assert.ErrorIs(t, err, attendance.ErrDuplicateEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetOpenSession_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`check_out IS NULL`).
		WithArgs("emp-1", date).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetOpenSession(context.Background(), "emp-1", date)

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_UpdateCheckOut_AlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(`UPDATE attendances`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "att-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateCheckOut(context.Background(), attendance.Attendance{ID: "att-1"})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		table   string
		del     func(context.Context, string) error
		missing error
	}{
		{"attendance", "attendances", NewAttendanceRepository(db).Delete, attendance.ErrAttendanceNotFound},
		{"sick leave", "sick_leaves", NewSickLeaveRepository(db).Delete, sickleave.ErrSickLeaveNotFound},
		{"leave request", "leave_requests", NewLeaveRequestRepository(db).Delete, leave.ErrLeaveRequestNotFound},
		{"business trip", "business_trips", NewBusinessTripRepository(db).Delete, trip.ErrBusinessTripNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(`DELETE FROM ` + tt.table).
				WithArgs("id-1").
				WillReturnResult(pgxmock.NewResult("DELETE", 1))
			mock.ExpectExec(`DELETE FROM ` + tt.table).
				WithArgs("id-2").
				WillReturnResult(pgxmock.NewResult("DELETE", 0))

			assert.NoError(t, tt.del(ctx, "id-1"))
			assert.ErrorIs(t, tt.del(ctx, "id-2"), tt.missing)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_List_Filters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRequestRepository(db)
	employeeID := "emp-1"
	status := leave.StatusApproved

	mock.ExpectQuery(`WHERE 1=1 AND employee_id = \$1 AND status = \$2`).
		WithArgs(employeeID, status).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	requests, err := repo.List(context.Background(), leave.ListFilter{EmployeeID: &employeeID, Status: &status})

	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}
