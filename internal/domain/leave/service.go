package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResult, error)
	ApproveLeaveRequest(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequestResult, error)
	RejectLeaveRequest(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, req ListLeaveRequestsRequest) ([]LeaveRequestResponse, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
}
