package sickleave

import "context"

type SickLeaveService interface {
	CreateSickLeave(ctx context.Context, req CreateSickLeaveRequest) (SickLeaveResult, error)
	ListSickLeaves(ctx context.Context, employeeID string) ([]SickLeaveResponse, error)
	DeleteSickLeave(ctx context.Context, id string) error
}
