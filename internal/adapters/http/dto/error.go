package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/logging"
)

// MsgInternalError is the only detail clients see for unclassified errors.
const MsgInternalError = "Internal server error - check logs"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse builds the response body and status for err. Errors that
// do not wrap a known domain sentinel are reported as 500 with a generic
// message so internal details never leak to clients.
func NewErrorResponse(err error) (ErrorResponse, int) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return ErrorResponse{Error: MsgInternalError}, status
	}
	return ErrorResponse{Error: err.Error()}, status
}

// WriteErrorResponse classifies err and writes the JSON error body. 5xx
// errors are logged with the request-scoped logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := NewErrorResponse(err)

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, r, status, resp)
}

// StatusFor maps domain sentinel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
