package trip

import "context"

type BusinessTripService interface {
	CreateBusinessTrip(ctx context.Context, req CreateBusinessTripRequest) (BusinessTripResult, error)
	ApproveBusinessTrip(ctx context.Context, req ReviewBusinessTripRequest) (BusinessTripResponse, error)
	RejectBusinessTrip(ctx context.Context, req ReviewBusinessTripRequest) (BusinessTripResponse, error)
	ListBusinessTrips(ctx context.Context, req ListBusinessTripsRequest) ([]BusinessTripResponse, error)
	DeleteBusinessTrip(ctx context.Context, id string) error
}
