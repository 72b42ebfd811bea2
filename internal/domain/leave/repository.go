package leave

import "context"

type ListFilter struct {
	EmployeeID *string
	Status     *Status
	Kind       *Kind
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy *string) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
