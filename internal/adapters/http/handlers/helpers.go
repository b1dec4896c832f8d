package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// mapCreateRequest converts a CreateTaskListRequest to a domain TaskList.
func mapCreateRequest(req *dto.CreateTaskListRequest) *tasklist.TaskList {
	return &tasklist.TaskList{
		Name:          req.Name,
		Tasks:         req.Tasks,
		AttachedUsers: req.AttachedUsers,
	}
}

// mapUpdateRequest converts an UpdateTaskListRequest to a domain TaskList.
// Nil slices are kept nil so the store leaves those fields unchanged.
func mapUpdateRequest(req *dto.UpdateTaskListRequest) *tasklist.TaskList {
	return &tasklist.TaskList{
		ID:            req.ID,
		Name:          req.Name,
		Tasks:         req.Tasks,
		AttachedUsers: req.AttachedUsers,
	}
}
