package sickleave

import "context"

type SickLeaveRepository interface {
	// Create returns ErrDuplicateSickLeave when the employee already has a sick leave starting on the same date.
	Create(ctx context.Context, sl SickLeave) (SickLeave, error)
	GetByID(ctx context.Context, id string) (SickLeave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SickLeave, error)
	Delete(ctx context.Context, id string) error
}
