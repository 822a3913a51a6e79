package http

import (
	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/service"
)

type Handler struct {
	services *service.Services
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.Version,
		logger:   logger,
	}
}
