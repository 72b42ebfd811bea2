package http

import (
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/sickleave"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
)

type SickLeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type sickLeaveHandlerImpl struct {
	sickLeaveService sickleave.SickLeaveService
}

func NewSickLeaveHandler(sickLeaveService sickleave.SickLeaveService) SickLeaveHandler {
	return &sickLeaveHandlerImpl{
		sickLeaveService: sickLeaveService,
	}
}

// Create implements SickLeaveHandler.
func (h *sickLeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req sickleave.CreateSickLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}
	req.CreatedBy = stringPtr(claims.UserID)

	result, err := h.sickLeaveService.CreateSickLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.HandleValidation(w, result.Validation, true, "Sick leave registered", result)
}

// List implements SickLeaveHandler.
func (h *sickLeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	employeeID, ok := subjectEmployee(w, claims, r.URL.Query().Get("employee_id"))
	if !ok {
		return
	}

	results, err := h.sickLeaveService.ListSickLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements SickLeaveHandler.
func (h *sickLeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.sickLeaveService.DeleteSickLeave(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sick leave deleted", nil)
}
