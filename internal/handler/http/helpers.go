package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/presence-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

func callerClaims(w http.ResponseWriter, r *http.Request) (jwt.Claims, bool) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return jwt.Claims{}, false
	}
	return claims, true
}

// subjectEmployee resolves the employee a request acts on. Employees always
// act on themselves; administrators name the employee or fall back to their own.
func subjectEmployee(w http.ResponseWriter, claims jwt.Claims, requested string) (string, bool) {
	if claims.IsAdmin() {
		if requested == "" {
			requested = claims.EmployeeID
		}
		if requested == "" {
			response.ValidationError(w, map[string]string{"employee_id": "employee_id is required"})
			return "", false
		}
		if !validUUID(w, "employee_id", requested) {
			return "", false
		}
		return requested, true
	}

	if claims.EmployeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return "", false
	}
	if !validUUID(w, "employee_id", claims.EmployeeID) {
		return "", false
	}
	return claims.EmployeeID, true
}

// scopedEmployee narrows list queries: employees only see their own entries,
// administrators may filter by any employee or none.
func scopedEmployee(w http.ResponseWriter, claims jwt.Claims, requested string) (*string, bool) {
	if claims.IsAdmin() {
		if requested == "" {
			return nil, true
		}
		if !validUUID(w, "employee_id", requested) {
			return nil, false
		}
		return &requested, true
	}

	id, ok := subjectEmployee(w, claims, "")
	if !ok {
		return nil, false
	}
	return &id, true
}

// pathID reads the {id} route parameter. Ids are UUID columns, so anything
// else is bad input and never reaches the database.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validUUID(w, "id", id) {
		return "", false
	}
	return id, true
}

func validUUID(w http.ResponseWriter, field, value string) bool {
	if validator.IsValidUUID(value) {
		return true
	}
	response.ValidationError(w, map[string]string{field: field + " must be a valid UUID"})
	return false
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
