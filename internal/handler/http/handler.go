package http

import (
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Registry

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *metrics.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  registry,
		logger:   logger,
	}
}
