package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isoron/habit-sync/internal/service"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "key not found", err: service.ErrKeyNotFound, want: http.StatusNotFound},
		{name: "wrapped key not found", err: fmt.Errorf("%w: %w", service.ErrKeyNotFound, store.ErrNotFound), want: http.StatusNotFound},
		{name: "invalid store key", err: store.ErrInvalidKey, want: http.StatusNotFound},
		{name: "edit conflict", err: service.ErrEditConflict, want: http.StatusConflict},
		{name: "conflict error", err: &service.ConflictError{}, want: http.StatusConflict},
		{name: "registration unavailable", err: service.ErrRegistrationUnavailable, want: http.StatusServiceUnavailable},
		{name: "invalid json", err: utils.ErrInvalidJSON, want: http.StatusBadRequest},
		{name: "empty sync key", err: service.ErrEmptySyncKey, want: http.StatusBadRequest},
		{name: "bare store not found", err: store.ErrNotFound, want: http.StatusInternalServerError},
		{name: "write failure", err: store.ErrWritingRecord, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("something else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, fmt.Errorf("%w: open /var/lib/sync/a/b/c/d/abcd: permission denied", store.ErrReadingRecord))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "/var/lib")
	assert.Contains(t, rr.Body.String(), http.StatusText(http.StatusInternalServerError))
}
