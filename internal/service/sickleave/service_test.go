package sickleave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeID = "emp-1"

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubLoader struct {
	snap conflictsvc.Snapshot
	err  error
}

func (s *stubLoader) Load(ctx context.Context, id string) (conflictsvc.Snapshot, error) {
	return s.snap, s.err
}

type memorySickLeaveRepo struct {
	rows      []sickleave.SickLeave
	createErr error
}

func (m *memorySickLeaveRepo) Create(ctx context.Context, sl sickleave.SickLeave) (sickleave.SickLeave, error) {
	if m.createErr != nil {
		return sickleave.SickLeave{}, m.createErr
	}
	for _, r := range m.rows {
		if r.EmployeeID == sl.EmployeeID && r.StartDate.Equal(sl.StartDate) {
			return sickleave.SickLeave{}, sickleave.ErrDuplicateSickLeave
		}
	}
	sl.ID = "sl-" + utils.FormatDate(sl.StartDate)
	sl.CreatedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	m.rows = append(m.rows, sl)
	return sl, nil
}

func (m *memorySickLeaveRepo) GetByID(ctx context.Context, id string) (sickleave.SickLeave, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return sickleave.SickLeave{}, sickleave.ErrSickLeaveNotFound
}

func (m *memorySickLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]sickleave.SickLeave, error) {
	var out []sickleave.SickLeave
	for _, r := range m.rows {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memorySickLeaveRepo) Delete(ctx context.Context, id string) error {
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return sickleave.ErrSickLeaveNotFound
}

func day(s string) time.Time {
	d, _ := utils.ParseDate(s)
	return d
}

func strPtr(s string) *string {
	return &s
}

func newService(snap conflictsvc.Snapshot) (*SickLeaveServiceImpl, *memorySickLeaveRepo) {
	repo := &memorySickLeaveRepo{}
	return NewSickLeaveService(passthroughTx{}, repo, &stubLoader{snap: snap}), repo
}

func hired() conflictsvc.Snapshot {
	return conflictsvc.Snapshot{Employee: employee.Employee{ID: employeeID, HireDate: day("2024-03-10")}}
}

func TestSickLeaveService_CreateSickLeave_SingleDay(t *testing.T) {
	svc, repo := newService(hired())

	res, err := svc.CreateSickLeave(context.Background(), sickleave.CreateSickLeaveRequest{
		EmployeeID:    employeeID,
		StartDate:     "2024-06-03",
		ReferenceCode: strPtr("INPS-123"),
	})

	require.NoError(t, err)
	assert.True(t, res.Validation.IsValid)
	require.NotNil(t, res.SickLeave)
	assert.Equal(t, "2024-06-03", res.SickLeave.EndDate)
	assert.Len(t, repo.rows, 1)
}

func TestSickLeaveService_CreateSickLeave_WorkedDayConflict(t *testing.T) {
	snap := hired()
	in := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	snap.Attendance = []attendance.Attendance{
		{ID: "att-1", EmployeeID: employeeID, Date: day("2024-06-04"), CheckIn: &in, EntryKind: attendance.EntryRegular},
	}
	svc, repo := newService(snap)

	res, err := svc.CreateSickLeave(context.Background(), sickleave.CreateSickLeaveRequest{
		EmployeeID: employeeID,
		StartDate:  "2024-06-03",
		EndDate:    strPtr("2024-06-05"),
	})

	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	assert.Equal(t, conflict.KindAttendance, res.Validation.Violations[0].Kind)
	assert.Nil(t, res.SickLeave)
	assert.Empty(t, repo.rows)
}

func TestSickLeaveService_CreateSickLeave_Duplicate(t *testing.T) {
	svc, _ := newService(hired())
	ctx := context.Background()
	req := sickleave.CreateSickLeaveRequest{EmployeeID: employeeID, StartDate: "2024-06-03"}

	_, err := svc.CreateSickLeave(ctx, req)
	require.NoError(t, err)

	res, err := svc.CreateSickLeave(ctx, req)

	require.NoError(t, err)
	assert.False(t, res.Validation.IsValid)
	assert.Equal(t, conflict.CodeDuplicateEntry, res.Validation.Violations[0].Code)
	assert.Equal(t, "Esiste già una registrazione per il 2024-06-03", res.Validation.Conflicts[0])
}

func TestSickLeaveService_CreateSickLeave_StorageFailure(t *testing.T) {
	svc, repo := newService(hired())
	repo.createErr = errors.New("connection refused")

	_, err := svc.CreateSickLeave(context.Background(), sickleave.CreateSickLeaveRequest{EmployeeID: employeeID, StartDate: "2024-06-03"})

	assert.ErrorIs(t, err, conflict.ErrStorageUnavailable)
}

func TestSickLeaveService_ListAndDelete(t *testing.T) {
	svc, _ := newService(hired())
	ctx := context.Background()

	for _, d := range []string{"2024-06-03", "2024-07-01"} {
		_, err := svc.CreateSickLeave(ctx, sickleave.CreateSickLeaveRequest{EmployeeID: employeeID, StartDate: d})
		require.NoError(t, err)
	}

	list, err := svc.ListSickLeaves(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.DeleteSickLeave(ctx, list[0].ID))
	assert.ErrorIs(t, svc.DeleteSickLeave(ctx, list[0].ID), sickleave.ErrSickLeaveNotFound)

	list, err = svc.ListSickLeaves(ctx, employeeID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
