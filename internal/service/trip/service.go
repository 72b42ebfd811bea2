package trip

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	conflictsvc "github.com/cmlabs-hris/presence-backend-go/internal/service/conflict"
)

type TripServiceImpl struct {
	trip.BusinessTripRepository
	employee.EmployeeRepository
}

func NewTripService(tripRepository trip.BusinessTripRepository, employeeRepository employee.EmployeeRepository) *TripServiceImpl {
	return &TripServiceImpl{
		BusinessTripRepository: tripRepository,
		EmployeeRepository:     employeeRepository,
	}
}

// CreateBusinessTrip implements trip.BusinessTripService.
// Trips are only checked against the hire date; overlaps are resolved when
// the other entries are validated.
func (s *TripServiceImpl) CreateBusinessTrip(ctx context.Context, req trip.CreateBusinessTripRequest) (trip.BusinessTripResult, error) {
	if err := req.Validate(); err != nil {
		return trip.BusinessTripResult{}, err
	}

	entity := req.ToEntity()
	emp, err := s.EmployeeRepository.GetByID(ctx, entity.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return trip.BusinessTripResult{}, err
		}
		return trip.BusinessTripResult{}, conflict.Storage("get employee", err)
	}

	result := trip.BusinessTripResult{Validation: conflictsvc.CheckHireDate(emp, entity.StartDate, entity.EndDate)}
	if !result.Validation.IsValid {
		return result, nil
	}

	created, err := s.BusinessTripRepository.Create(ctx, entity)
	if err != nil {
		return trip.BusinessTripResult{}, conflict.Storage("create business trip", err)
	}

	res := trip.ToResponse(created)
	result.BusinessTrip = &res
	return result, nil
}

// ApproveBusinessTrip implements trip.BusinessTripService.
func (s *TripServiceImpl) ApproveBusinessTrip(ctx context.Context, req trip.ReviewBusinessTripRequest) (trip.BusinessTripResponse, error) {
	return s.review(ctx, req, trip.StatusApproved)
}

// RejectBusinessTrip implements trip.BusinessTripService.
func (s *TripServiceImpl) RejectBusinessTrip(ctx context.Context, req trip.ReviewBusinessTripRequest) (trip.BusinessTripResponse, error) {
	return s.review(ctx, req, trip.StatusRejected)
}

func (s *TripServiceImpl) review(ctx context.Context, req trip.ReviewBusinessTripRequest, status trip.Status) (trip.BusinessTripResponse, error) {
	if err := req.Validate(); err != nil {
		return trip.BusinessTripResponse{}, err
	}

	current, err := s.BusinessTripRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, trip.ErrBusinessTripNotFound) {
			return trip.BusinessTripResponse{}, err
		}
		return trip.BusinessTripResponse{}, conflict.Storage("get business trip", err)
	}
	if current.Status != trip.StatusPending {
		return trip.BusinessTripResponse{}, trip.ErrBusinessTripAlreadyProcessed
	}

	var reviewedBy *string
	if req.ReviewedBy != "" {
		reviewedBy = &req.ReviewedBy
	}

	updated, err := s.BusinessTripRepository.UpdateStatus(ctx, current.ID, status, reviewedBy)
	if err != nil {
		return trip.BusinessTripResponse{}, conflict.Storage("update business trip", err)
	}
	return trip.ToResponse(updated), nil
}

// ListBusinessTrips implements trip.BusinessTripService.
func (s *TripServiceImpl) ListBusinessTrips(ctx context.Context, req trip.ListBusinessTripsRequest) ([]trip.BusinessTripResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	trips, err := s.BusinessTripRepository.List(ctx, req.ToFilter())
	if err != nil {
		return nil, conflict.Storage("list business trips", err)
	}

	res := make([]trip.BusinessTripResponse, 0, len(trips))
	for _, t := range trips {
		res = append(res, trip.ToResponse(t))
	}
	return res, nil
}

// DeleteBusinessTrip implements trip.BusinessTripService.
func (s *TripServiceImpl) DeleteBusinessTrip(ctx context.Context, id string) error {
	if err := s.BusinessTripRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, trip.ErrBusinessTripNotFound) {
			return err
		}
		return conflict.Storage("delete business trip", err)
	}
	return nil
}
