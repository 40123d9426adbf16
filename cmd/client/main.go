package main

import (
	"os"

	"github.com/isoron/habit-sync/internal/client"
	"github.com/isoron/habit-sync/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
)

func main() {
	if buildVersion != "" {
		client.Version = buildVersion
	}
	if buildCommit != "" {
		client.Commit = buildCommit
	}

	log := logger.NewClientLogger("habit-sync-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	app := client.NewApp(os.Stdout, log)
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
