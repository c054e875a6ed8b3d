package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/apperr"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
)

// PathID reads a positive integer route parameter.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid(name, "must be a positive integer")
	}
	return id, nil
}

// QueryID reads an optional positive integer query parameter such as ?user_id=.
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperr.Invalid(name, "must be a positive integer")
	}
	return &id, nil
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched. On malformed input it writes the 400 response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request payload too large", requestctx.GetRequestID(r.Context()))
		return false
	}
	api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
	return false
}

// Str dereferences an optional JSON string field.
func Str(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
