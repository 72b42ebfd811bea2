package http

import (
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
)

type ConflictHandler interface {
	GetIndex(w http.ResponseWriter, r *http.Request)
	ValidateVacation(w http.ResponseWriter, r *http.Request)
	ValidatePermission(w http.ResponseWriter, r *http.Request)
	ValidateSickLeave(w http.ResponseWriter, r *http.Request)
	ValidateAttendance(w http.ResponseWriter, r *http.Request)
}

type conflictHandlerImpl struct {
	conflictService conflict.ConflictService
}

func NewConflictHandler(conflictService conflict.ConflictService) ConflictHandler {
	return &conflictHandlerImpl{
		conflictService: conflictService,
	}
}

// GetIndex implements ConflictHandler.
func (h *conflictHandlerImpl) GetIndex(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	employeeID, ok := subjectEmployee(w, claims, r.URL.Query().Get("employee_id"))
	if !ok {
		return
	}

	req := conflict.GetIndexRequest{
		EmployeeID: employeeID,
		Operation:  r.URL.Query().Get("kind"),
		Generation: r.URL.Query().Get("generation"),
	}

	index, err := h.conflictService.GetConflictIndex(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, index)
}

// ValidateVacation implements ConflictHandler.
func (h *conflictHandlerImpl) ValidateVacation(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req conflict.ValidateVacationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}

	result, err := h.conflictService.ValidateVacation(r.Context(), req)
	writeValidation(w, result, err)
}

// ValidatePermission implements ConflictHandler.
func (h *conflictHandlerImpl) ValidatePermission(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req conflict.ValidatePermissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}

	result, err := h.conflictService.ValidatePermission(r.Context(), req)
	writeValidation(w, result, err)
}

// ValidateSickLeave implements ConflictHandler.
func (h *conflictHandlerImpl) ValidateSickLeave(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req conflict.ValidateSickLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}

	result, err := h.conflictService.ValidateSickLeave(r.Context(), req)
	writeValidation(w, result, err)
}

// ValidateAttendance implements ConflictHandler.
func (h *conflictHandlerImpl) ValidateAttendance(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req conflict.ValidateAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID, ok = subjectEmployee(w, claims, req.EmployeeID); !ok {
		return
	}

	result, err := h.conflictService.ValidateAttendance(r.Context(), req)
	writeValidation(w, result, err)
}

// writeValidation answers a dry-run check: 200 when valid, 409 listing the
// violations otherwise.
func writeValidation(w http.ResponseWriter, result conflict.ValidationResult, err error) {
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.HandleValidation(w, result, false, "Validation passed", result)
}
