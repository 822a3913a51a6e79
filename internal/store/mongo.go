package store

import (
	"context"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewConnectMongo establishes a MongoDB connection for the document-store
// sync-log backend and verifies it with a ping.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("error occured during mongo connection: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongo successfully")

	return client.Database(cfg.Database), nil
}
