package http

import (
	"net/http"
	"time"

	"github.com/isoron/habit-sync/internal/logger"
)

// withLogging writes one access log entry per request. Paths carry sync
// keys and link ids, so the entry records the matched route pattern rather
// than the request URI.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("route", routePattern(r)).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
