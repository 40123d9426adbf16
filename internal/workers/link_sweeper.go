// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// LinkSweeper periodically purges expired links so that links nobody asks
// for again do not accumulate.
type LinkSweeper struct {
	links    service.LinkService
	expired  prometheus.Counter
	interval time.Duration

	logger *logger.Logger
}

// NewLinkSweeper creates a sweeper over links. A non-positive interval
// disables it: Run then returns immediately and expired links are only
// evicted when read.
func NewLinkSweeper(links service.LinkService, expired prometheus.Counter, interval time.Duration, logger *logger.Logger) *LinkSweeper {
	return &LinkSweeper{
		links:    links,
		expired:  expired,
		interval: interval,
		logger:   logger,
	}
}

func (s *LinkSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("link sweeper disabled")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Msg("link sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("link sweeper stopped")
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *LinkSweeper) sweep(ctx context.Context) {
	removed := s.links.Sweep(s.logger.WithContext(ctx))
	if removed == 0 {
		return
	}

	if s.expired != nil {
		s.expired.Add(float64(removed))
	}
	s.logger.Debug().Int("removed", removed).Msg("expired links purged")
}
