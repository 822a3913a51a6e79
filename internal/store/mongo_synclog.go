package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	syncLogCollection = "sync_logs"
	counterCollection = "counters"
	cursorCounterID   = "change_cursor"
)

// mongoSyncLogRepository is the MongoDB-backed implementation of
// [SyncLogRepository]. Sync logs are stored as whole documents; the chain
// race is detected by a unique compound index on
// (device_id, previous_log_id), mirroring the relational backend.
type mongoSyncLogRepository struct {
	logger   *logger.Logger
	logs     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoSyncLogRepository constructs a [SyncLogRepository] backed by the
// given database. The unique chain index is ensured at construction time.
func NewMongoSyncLogRepository(ctx context.Context, db *mongo.Database, logger *logger.Logger) (SyncLogRepository, error) {
	logger.Debug().Msg("creating mongo sync log repository")

	logs := db.Collection(syncLogCollection)
	_, err := logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "device_id", Value: 1}, {Key: "previous_log_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "device_id", Value: 1}, {Key: "date", Value: -1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error ensuring sync log indexes: %w", err)
	}

	return &mongoSyncLogRepository{
		logger:   logger,
		logs:     logs,
		counters: db.Collection(counterCollection),
	}, nil
}

func (r *mongoSyncLogRepository) Save(ctx context.Context, syncLog *models.SyncLog) error {
	log := logger.FromContext(ctx)

	_, err := r.logs.InsertOne(ctx, syncLog)
	if err != nil {
		log.Err(err).Str("func", "*mongoSyncLogRepository.Save").Msg("error saving sync log")

		if mongo.IsDuplicateKeyError(err) {
			return ErrChainConflict
		}
		return fmt.Errorf("unexpected mongo error: %w", err)
	}

	return nil
}

func (r *mongoSyncLogRepository) Get(ctx context.Context, id string) (*models.SyncLog, error) {
	log := logger.FromContext(ctx)

	var syncLog models.SyncLog
	err := r.logs.FindOne(ctx, bson.M{"_id": id}).Decode(&syncLog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSyncLogNotFound
		}
		log.Err(err).Str("func", "*mongoSyncLogRepository.Get").Msg("error decoding sync log")
		return nil, err
	}

	return &syncLog, nil
}

func (r *mongoSyncLogRepository) LastForDevice(ctx context.Context, deviceID string) (*models.SyncLog, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	var syncLog models.SyncLog
	err := r.logs.FindOne(ctx, bson.M{"device_id": deviceID}, opts).Decode(&syncLog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Err(err).Str("func", "*mongoSyncLogRepository.LastForDevice").Msg("error decoding sync log")
		return nil, err
	}

	return &syncLog, nil
}

func (r *mongoSyncLogRepository) NextChangeCursor(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": cursorCounterID},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		log.Err(err).Str("func", "*mongoSyncLogRepository.NextChangeCursor").Msg("error reserving change cursor")
		return 0, err
	}

	return counter.Value, nil
}

func (r *mongoSyncLogRepository) DeviceIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	raw, err := r.logs.Distinct(ctx, "device_id", bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoSyncLogRepository.DeviceIDs").Msg("error listing device ids")
		return nil, err
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
