package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
)

// errorResponse is the failure envelope: {message, errors?}.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []schema.FieldError `json:"errors,omitempty"`
}

// successResponse is returned by delete and mark-read operations, which
// have no entity body.
type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response failed", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeInvalidInput(w http.ResponseWriter, errs []schema.FieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid input", Errors: errs})
}

// writeServiceError maps the store error taxonomy onto HTTP statuses.
// Unexpected failures are logged and surfaced as a generic 500 so internal
// detail never leaks to the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		writeMessage(w, http.StatusConflict, "already exists")
	case errors.Is(err, repository.ErrUnavailable):
		slog.Error("storage unavailable", "error", err)
		writeMessage(w, http.StatusInternalServerError, "storage unavailable")
	default:
		slog.Error("unexpected error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
