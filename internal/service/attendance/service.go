package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db database.Transactor
	attendance.AttendanceRepository
	schedule.WorkScheduleRepository
	geofence.ConfigRepository
	snapshots conflictsvc.SnapshotLoader
	loc       *time.Location
	now       func() time.Time
}

func NewAttendanceService(
	db database.Transactor,
	attendanceRepository attendance.AttendanceRepository,
	workScheduleRepository schedule.WorkScheduleRepository,
	geofenceRepository geofence.ConfigRepository,
	snapshots conflictsvc.SnapshotLoader,
	loc *time.Location,
) *AttendanceServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		db:                     db,
		AttendanceRepository:   attendanceRepository,
		WorkScheduleRepository: workScheduleRepository,
		ConfigRepository:       geofenceRepository,
		snapshots:              snapshots,
		loc:                    loc,
		now:                    time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	s.now = now
	return s
}

func (s *AttendanceServiceImpl) localNow() time.Time {
	return s.now().In(s.loc)
}

// loadSchedule returns nil when no schedule is configured.
func (s *AttendanceServiceImpl) loadSchedule(ctx context.Context) (*schedule.WorkSchedule, error) {
	ws, err := s.WorkScheduleRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return nil, nil
		}
		return nil, conflict.Storage("load work schedule", err)
	}
	return &ws, nil
}

// loadGeofence returns nil when no geofence is configured.
func (s *AttendanceServiceImpl) loadGeofence(ctx context.Context) (*geofence.Config, error) {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, geofence.ErrGeofenceNotFound) {
			return nil, nil
		}
		return nil, conflict.Storage("load geofence", err)
	}
	return &cfg, nil
}

// CheckIn implements attendance.AttendanceService.
// The snapshot read, the decision and the insert share one transaction.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResult{}, err
	}

	now := s.localNow()
	today := utils.TruncateDay(now)
	var result attendance.CheckInResult

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshots.Load(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		ws, err := s.loadSchedule(ctx)
		if err != nil {
			return err
		}
		gf, err := s.loadGeofence(ctx)
		if err != nil {
			return err
		}

		decision := ResolveCheckIn(ResolverInput{
			Snapshot:  snap,
			Now:       now,
			Schedule:  ws,
			Geofence:  gf,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		result.Validation = decision.Validation
		result.DistanceMeters = decision.Geofence.DistanceMeters
		if !decision.Permitted {
			return nil
		}

		kind := attendance.EntryRegular
		if decision.IsBusinessTrip {
			kind = attendance.EntryBusinessTrip
		}
		created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:     req.EmployeeID,
			Date:           today,
			CheckIn:        &now,
			EntryKind:      kind,
			IsBusinessTrip: decision.IsBusinessTrip,
			IsLate:         decision.Lateness.IsLate,
			LateMinutes:    decision.Lateness.LateMinutes,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			Notes:          req.Notes,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateEntry) {
				return err
			}
			return conflict.Storage("create attendance", err)
		}

		res := attendance.ToResponse(created)
		result.Attendance = &res
		return nil
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateEntry) {
			return attendance.CheckInResult{
				Validation: conflict.Rejected(conflictsvc.DuplicateViolation(conflict.KindAttendance, today)),
			}, nil
		}
		return attendance.CheckInResult{}, err
	}

	return result, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	gf, err := s.loadGeofence(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if gf != nil && !gf.CheckoutEnabled {
		return attendance.AttendanceResponse{}, attendance.ErrCheckoutDisabled
	}

	now := s.localNow()
	open, err := s.AttendanceRepository.GetOpenSession(ctx, req.EmployeeID, utils.TruncateDay(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, conflict.Storage("get open session", err)
	}

	worked := workedHours(*open.CheckIn, now)
	open.CheckOut = &now
	open.WorkedHours = &worked

	updated, err := s.AttendanceRepository.UpdateCheckOut(ctx, open)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, conflict.Storage("update check-out", err)
	}

	return attendance.ToResponse(updated), nil
}

// workedHours is the elapsed time between in and out in hours, rounded to 2 decimals.
func workedHours(in, out time.Time) decimal.Decimal {
	seconds := int64(out.Sub(in) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600)).Round(2)
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	if employeeID == "" {
		return attendance.TodayStatusResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	snap, err := s.snapshots.Load(ctx, employeeID)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}
	ws, err := s.loadSchedule(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}
	gf, err := s.loadGeofence(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	now := s.localNow()
	today := utils.TruncateDay(now)
	checkoutEnabled := gf == nil || gf.CheckoutEnabled
	st := ResolveStatus(snap, ws, now, checkoutEnabled)

	res := attendance.TodayStatusResponse{
		Date:               utils.FormatDate(today),
		State:              st.State,
		IsWorkingDay:       st.IsWorkingDay,
		IsBusinessTrip:     st.IsBusinessTrip,
		CanCheckIn:         st.CanCheckIn,
		CanCheckOut:        st.CanCheckOut,
		CheckoutEnabled:    checkoutEnabled,
		Reason:             st.Reason,
		Violations:         st.Violations,
		TrackedWorkingDays: schedule.CountWorkingDays(ws, snap.Employee.TrackingStart(today), today, schedule.AssumeWorking),
	}
	if st.Today != nil {
		a := attendance.ToResponse(*st.Today)
		res.Attendance = &a
	}

	return res, nil
}

// CreateManualAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateManualAttendance(ctx context.Context, req attendance.ManualAttendanceRequest) (attendance.ManualAttendanceResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ManualAttendanceResult{}, err
	}

	entry := req.ToEntity(s.loc)
	var result attendance.ManualAttendanceResult

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshots.Load(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		result.Validation = conflictsvc.ValidateAttendanceEntry(snap, entry.Date)
		if !result.Validation.IsValid {
			return nil
		}

		created, err := s.AttendanceRepository.Create(ctx, entry)
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateEntry) {
				return err
			}
			return conflict.Storage("create manual attendance", err)
		}

		res := attendance.ToResponse(created)
		result.Attendance = &res
		return nil
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateEntry) {
			return attendance.ManualAttendanceResult{
				Validation: conflict.Rejected(conflictsvc.DuplicateViolation(conflict.KindAttendance, entry.Date)),
			}, nil
		}
		return attendance.ManualAttendanceResult{}, err
	}

	return result, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, _ := utils.ParseDate(req.StartDate)
	to, _ := utils.ParseDate(req.EndDate)

	rows, err := s.AttendanceRepository.List(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, conflict.Storage("list attendance", err)
	}

	res := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		res = append(res, attendance.ToResponse(a))
	}
	return res, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return err
		}
		return conflict.Storage("delete attendance", err)
	}
	return nil
}
