package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/trip"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
)

type BusinessTripHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type businessTripHandlerImpl struct {
	tripService trip.BusinessTripService
}

func NewBusinessTripHandler(tripService trip.BusinessTripService) BusinessTripHandler {
	return &businessTripHandlerImpl{
		tripService: tripService,
	}
}

// Create implements BusinessTripHandler.
func (h *businessTripHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req trip.CreateBusinessTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}

	result, err := h.tripService.CreateBusinessTrip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.HandleValidation(w, result.Validation, true, "Business trip submitted", result)
}

// List implements BusinessTripHandler.
func (h *businessTripHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	employeeID, ok := scopedEmployee(w, claims, r.URL.Query().Get("employee_id"))
	if !ok {
		return
	}

	req := trip.ListBusinessTripsRequest{
		EmployeeID: employeeID,
		Status:     optionalQuery(r, "status"),
	}

	results, err := h.tripService.ListBusinessTrips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements BusinessTripHandler.
func (h *businessTripHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.tripService.ApproveBusinessTrip, "Business trip approved")
}

// Reject implements BusinessTripHandler.
func (h *businessTripHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.tripService.RejectBusinessTrip, "Business trip rejected")
}

type reviewFunc func(ctx context.Context, req trip.ReviewBusinessTripRequest) (trip.BusinessTripResponse, error)

func (h *businessTripHandlerImpl) review(w http.ResponseWriter, r *http.Request, fn reviewFunc, message string) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req := trip.ReviewBusinessTripRequest{
		ID:         id,
		ReviewedBy: claims.UserID,
	}

	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

// Delete implements BusinessTripHandler.
func (h *businessTripHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.tripService.DeleteBusinessTrip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business trip deleted", nil)
}
