package service

import (
	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/internal/utils"
)

type Services struct {
	SyncService SyncService
	LinkService LinkService
}

// NewServices wires the services over storages. Sync keys and link ids are
// drawn from separate generators.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, registry *metrics.Registry, logger *logger.Logger) *Services {
	syncService := NewSyncService(storages.RecordStore, utils.NewRandomKeyGenerator(), cfg.Server, logger)
	linkService := NewLinkService(utils.NewRandomKeyGenerator(), cfg.Links, logger)

	registry.RegisterLinksActive(linkService.Count)

	return &Services{
		SyncService: NewSyncMetricsService(registry).Wrap(syncService),
		LinkService: linkService,
	}
}
