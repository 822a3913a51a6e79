package service

import (
	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/store"
)

type Services struct {
	RestoreService      RestoreService
	RegistrationService RegistrationService
	FootprintService    FootprintService
	ChainAuditService   ChainAuditService
}

func NewServices(storages store.Storages, resolver OwnershipResolver, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	footprint := NewFootprintService(storages.SyncLogRepository, logger)

	return &Services{
		RestoreService:      NewRestoreService(storages.SyncLogRepository, storages.DeviceRepository, resolver, cfg.App, logger),
		RegistrationService: NewRegistrationService(storages.DeviceRepository, logger),
		FootprintService:    footprint,
		ChainAuditService:   footprint,
	}
}
