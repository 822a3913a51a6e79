package store

import (
	"context"

	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	SyncLogRepository SyncLogRepository
	CaseRepository    CaseRepository
	DeviceRepository  DeviceRepository
}

// NewStorages connects the configured persistence backends, runs migrations,
// and wires the repositories. Cases and devices always live in PostgreSQL;
// the sync-log chain is backed by PostgreSQL or MongoDB depending on
// cfg.SyncLogBackend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	storages := &Storages{
		CaseRepository:   NewCaseRepository(db, log),
		DeviceRepository: NewDeviceRepository(db, log),
	}

	switch cfg.SyncLogBackend {
	case config.BackendMongo:
		mongoDB, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		storages.SyncLogRepository, err = NewMongoSyncLogRepository(ctx, mongoDB, log)
		if err != nil {
			return nil, err
		}
	default:
		storages.SyncLogRepository = NewSyncLogRepository(db, log)
	}

	return storages, nil
}
