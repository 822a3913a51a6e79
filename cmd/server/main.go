package main

import (
	"context"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/adapter"
	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/handler"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/server"
	"github.com/fieldtrack/syncserver/internal/service"
	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("sync-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, newResolver(cfg.Resolver, storages), *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

	servers.RunServer()
}

// newResolver picks the ownership resolver backend: an upstream HTTP
// service when one is configured, the local case store otherwise.
func newResolver(cfg config.Resolver, storages *store.Storages) service.OwnershipResolver {
	if cfg.BaseURL != "" {
		return adapter.NewHTTPOwnershipResolver(adapter.HTTPResolverConfig{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	}

	return adapter.NewLocalOwnershipResolver(storages.CaseRepository)
}

func newLogger(cfg config.App) *logger.Logger {
	if cfg.LogFile != "" {
		return logger.NewFileLogger("sync-server", cfg.LogFile)
	}

	return logger.NewLogger("sync-server")
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
