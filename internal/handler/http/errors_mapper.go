package http

import (
	"errors"
	"net/http"

	"github.com/isoron/habit-sync/internal/service"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/internal/utils"
)

// statusFromError maps the error taxonomy onto HTTP status codes. Storage
// and other unexpected failures are reported as an opaque 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrKeyNotFound),
		errors.Is(err, store.ErrInvalidKey):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEditConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrRegistrationUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, utils.ErrInvalidJSON),
		errors.Is(err, service.ErrEmptySyncKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status for err and its standard status text.
// Error details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
