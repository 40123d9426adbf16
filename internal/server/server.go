package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/handler"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(s.httpServer.Shutdown)
}

// run serves until ctx is cancelled or the listener fails, then shuts the
// HTTP server down and waits for the workers to return.
func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		<-serveErr
	case err := <-serveErr:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}

	cancel()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
}
