package workers

import (
	"context"
	"sync"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server.
func NewWorkers(services *service.Services, registry *metrics.Registry, cfg config.Links, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewLinkSweeper(services.LinkService, registry.LinksExpired, cfg.SweepInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
