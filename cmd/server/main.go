package main

import (
	"context"
	"fmt"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/handler"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/metrics"
	"github.com/isoron/habit-sync/internal/server"
	"github.com/isoron/habit-sync/internal/service"
	"github.com/isoron/habit-sync/internal/store"
	"github.com/isoron/habit-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("habit-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := metrics.NewRegistry()
	services := service.NewServices(storages, *cfg, registry, log)

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, registry, cfg.Links, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
