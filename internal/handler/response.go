package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/service"
	"github.com/qlf-seminar/backend/internal/validation"
)

const (
	maxJSONBody = 1 << 20 // 1 MB

	msgInvalidJSON    = "Invalid JSON"
	msgValidation     = "Validation error"
	msgDBNotConnected = "Database not connected. Please try again later."
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON reads a single JSON value of at most maxJSONBody bytes.
// Anything but whitespace after that value is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// writeFailure maps a service error onto the API error taxonomy:
// validation 400, duplicate 400, not found 404, store down 503, anything else 500.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	var verr *validation.Error
	var missing *service.MissingFieldsError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, msgValidation, verr.Messages())
	case errors.As(err, &missing):
		writeError(w, http.StatusBadRequest, "Missing required fields", missing.Fields)
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered", nil)
	case errors.Is(err, service.ErrReplyRequired):
		writeError(w, http.StatusBadRequest, "Reply is required", nil)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound, nil)
	case errors.Is(err, repository.ErrUnavailable):
		slog.Warn("database unavailable", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusServiceUnavailable, msgDBNotConnected, nil)
	default:
		slog.Error(fallback, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
