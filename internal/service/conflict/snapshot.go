package conflict

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
)

// Snapshot holds every stored entry of one employee that participates in
// conflict detection, read in one pass.
type Snapshot struct {
	Employee   employee.Employee
	Trips      []trip.BusinessTrip
	Leaves     []leave.LeaveRequest
	SickLeaves []sickleave.SickLeave
	Attendance []attendance.Attendance
}

// SnapshotLoader reads a Snapshot for an employee.
type SnapshotLoader interface {
	Load(ctx context.Context, employeeID string) (Snapshot, error)
}

type RepositoryLoader struct {
	employee.EmployeeRepository
	trip.BusinessTripRepository
	leave.LeaveRequestRepository
	sickleave.SickLeaveRepository
	attendance.AttendanceRepository
}

func NewSnapshotLoader(
	employeeRepository employee.EmployeeRepository,
	tripRepository trip.BusinessTripRepository,
	leaveRepository leave.LeaveRequestRepository,
	sickLeaveRepository sickleave.SickLeaveRepository,
	attendanceRepository attendance.AttendanceRepository,
) *RepositoryLoader {
	return &RepositoryLoader{
		EmployeeRepository:     employeeRepository,
		BusinessTripRepository: tripRepository,
		LeaveRequestRepository: leaveRepository,
		SickLeaveRepository:    sickLeaveRepository,
		AttendanceRepository:   attendanceRepository,
	}
}

// Load only keeps approved trips and leave requests; pending ones never block.
// Any read failure other than a missing employee is a StorageError.
func (l *RepositoryLoader) Load(ctx context.Context, employeeID string) (Snapshot, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return Snapshot{}, err
		}
		return Snapshot{}, conflict.Storage("load employee", err)
	}

	approvedTrip := trip.StatusApproved
	trips, err := l.BusinessTripRepository.List(ctx, trip.ListFilter{EmployeeID: &employeeID, Status: &approvedTrip})
	if err != nil {
		return Snapshot{}, conflict.Storage("load business trips", err)
	}

	approvedLeave := leave.StatusApproved
	leaves, err := l.LeaveRequestRepository.List(ctx, leave.ListFilter{EmployeeID: &employeeID, Status: &approvedLeave})
	if err != nil {
		return Snapshot{}, conflict.Storage("load leave requests", err)
	}

	sickLeaves, err := l.SickLeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return Snapshot{}, conflict.Storage("load sick leaves", err)
	}

	rows, err := l.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return Snapshot{}, conflict.Storage("load attendance", err)
	}

	return Snapshot{
		Employee:   emp,
		Trips:      trips,
		Leaves:     leaves,
		SickLeaves: sickLeaves,
		Attendance: rows,
	}, nil
}

// countsAsWorked selects the attendance rows that occupy a date: every row that
// is not a sick-leave projection, plus every manual row.
func countsAsWorked(a attendance.Attendance) bool {
	return !a.IsSickLeave || a.IsManual
}
