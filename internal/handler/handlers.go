package handler

import (
	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/handler/http"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, registry *metrics.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, registry, logger),
	}, nil
}
