package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventsphere-api/internal/custom_errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError maps the sentinel taxonomy to HTTP statuses. Client-facing
// failures carry their message; infrastructure failures are reported
// generically so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound),
		errors.Is(err, custom_errors.ErrEventNotFound):
		WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrInvalidInput):
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrInvalidCredentials):
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "Incorrect password"})
	case errors.Is(err, custom_errors.ErrEmailAlreadyExists):
		WriteJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "An error occurred"})
	}
}
