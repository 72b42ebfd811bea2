package http

import (
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/geofence"
	"github.com/cmlabs-hris/presence-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetWorkSchedule(w http.ResponseWriter, r *http.Request)
	UpdateWorkSchedule(w http.ResponseWriter, r *http.Request)
	GetGeofence(w http.ResponseWriter, r *http.Request)
	UpdateGeofence(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	scheduleService schedule.ScheduleService
	geofenceService geofence.GeofenceService
}

func NewSettingsHandler(scheduleService schedule.ScheduleService, geofenceService geofence.GeofenceService) SettingsHandler {
	return &settingsHandlerImpl{
		scheduleService: scheduleService,
		geofenceService: geofenceService,
	}
}

// GetWorkSchedule implements SettingsHandler.
func (h *settingsHandlerImpl) GetWorkSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWorkSchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWorkSchedule implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var req schedule.UpdateWorkScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UpdatedBy = stringPtr(claims.UserID)

	result, err := h.scheduleService.UpdateWorkSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule updated", result)
}

// GetGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) GetGeofence(w http.ResponseWriter, r *http.Request) {
	result, err := h.geofenceService.GetGeofence(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateGeofence(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpdateConfigRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.geofenceService.UpdateGeofence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence updated", result)
}
