package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// URL parameter names.
const (
	keyParam = "key"
	idParam  = "id"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// sync records
	router.Post("/register", h.register)
	router.Get("/db/{key}", h.getData)
	router.Put("/db/{key}", h.putData)
	router.Get("/db/{key}/version", h.getVersion)

	// pairing links
	router.Post("/links", h.registerLink)
	router.Get("/links/{id}", h.getLink)

	// service endpoints
	router.Get("/health", h.health)
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
