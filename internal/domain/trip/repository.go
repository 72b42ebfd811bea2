package trip

import "context"

type ListFilter struct {
	EmployeeID *string
	Status     *Status
}

type BusinessTripRepository interface {
	Create(ctx context.Context, trip BusinessTrip) (BusinessTrip, error)
	GetByID(ctx context.Context, id string) (BusinessTrip, error)
	List(ctx context.Context, filter ListFilter) ([]BusinessTrip, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy *string) (BusinessTrip, error)
	Delete(ctx context.Context, id string) error
}
