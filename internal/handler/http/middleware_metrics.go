package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// routeUnmatched labels requests that did not match any route.
const routeUnmatched = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		route := routePattern(r)
		h.metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		h.metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// routePattern returns the chi pattern the request was routed to. It is
// only complete once the router has handled the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return routeUnmatched
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return routeUnmatched
}
