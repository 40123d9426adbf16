package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
)

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	registry := metrics.NewRegistry()
	h := &Handler{metrics: registry, logger: logger.Nop()}

	r := chi.NewRouter()
	r.Use(h.withMetrics)
	r.Get("/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "GONE" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte("{}"))
	})

	for _, path := range []string{"/links/A", "/links/B", "/links/GONE", "/other"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	total := registry.RequestsTotal
	assert.Equal(t, 2.0, testutil.ToFloat64(total.WithLabelValues("GET", "/links/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(total.WithLabelValues("GET", "/links/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(total.WithLabelValues("GET", routeUnmatched, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(registry.RequestDuration))
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.Equal(t, routeUnmatched, routePattern(req))
}
