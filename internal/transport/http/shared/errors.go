package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"clickshr/internal/domain/apperr"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
)

// WriteError is the single error responder for resource handlers. Failures
// that are not classified by apperr are logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestctx.GetRequestID(r.Context())

	var validation *apperr.ValidationError
	switch {
	case errors.As(err, &validation):
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", validation.Error(),
			map[string]any{"fields": validation.Issues}, requestID)
	case errors.Is(err, apperr.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, apperr.ErrConflict):
		api.Fail(w, http.StatusBadRequest, "conflict", err.Error(), requestID)
	case errors.Is(err, apperr.ErrDuplicate):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
