package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/stacklok/readmode-server/internal/service"
)

// maxBodyBytes bounds request bodies; selections and recent entries are small
const maxBodyBytes = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSONResponse writes a JSON response with the given data
func WriteJSONResponse(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteErrorResponse writes a standardized error response
func WriteErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	WriteJSONResponse(w, ErrorResponse{Error: message}, statusCode)
}

// WriteServiceError maps a service error to its HTTP status and writes it.
// Unexpected errors are logged and reported as 500 without details.
func WriteServiceError(r *http.Request, w http.ResponseWriter, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteErrorResponse(w, "internal server error", status)
		return
	}
	WriteErrorResponse(w, err.Error(), status)
}

// StatusForError returns the HTTP status for a service error
func StatusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrCatalogNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrPlaylistNotFound), errors.Is(err, service.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnknownCategory), errors.Is(err, service.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTagDisabled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSONBody decodes the request body into dst and validates it against
// its struct tags. Unknown fields are rejected.
func DecodeJSONBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: failed on %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
