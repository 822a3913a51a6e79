package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
	"github.com/jackc/pgerrcode"
)

// syncLogRepository is the PostgreSQL-backed implementation of
// [SyncLogRepository]. Case-state sets are stored as jsonb documents; the
// chain-linkage race is detected by the unique index on
// (device_id, previous_log_id), which makes two exchanges extending the same
// chain tail collide at insert time.
type syncLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSyncLogRepository constructs a [SyncLogRepository] backed by the
// provided database connection and logger.
func NewSyncLogRepository(db *DB, logger *logger.Logger) SyncLogRepository {
	logger.Debug().Msg("creating sync log repository")
	return &syncLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists a freshly built sync log.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrChainConflict]: another
//     exchange already chained onto the same previous log.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *syncLogRepository) Save(ctx context.Context, syncLog *models.SyncLog) error {
	log := logger.FromContext(ctx)

	cases, dependent, owners, err := marshalSyncLogSets(syncLog)
	if err != nil {
		log.Err(err).Str("func", "*syncLogRepository.Save").Msg("error marshaling case state sets")
		return err
	}

	_, err = r.db.ExecContext(ctx, saveSyncLog,
		syncLog.ID, syncLog.Date, syncLog.DeviceID, syncLog.PreviousLogID,
		syncLog.ChangeCursor, cases, dependent, owners)
	if err != nil {
		log.Err(err).Str("func", "*syncLogRepository.Save").Msg("error saving sync log")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrChainConflict
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// Get loads one sync log by id.
func (r *syncLogRepository) Get(ctx context.Context, id string) (*models.SyncLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSyncLog, id)
	syncLog, err := scanSyncLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSyncLogNotFound
		}
		log.Err(err).Str("func", "*syncLogRepository.Get").Msg("error scanning sync log")
		return nil, err
	}

	return syncLog, nil
}

// LastForDevice returns the device's most recent sync log or (nil, nil) when
// the device has never synced.
func (r *syncLogRepository) LastForDevice(ctx context.Context, deviceID string) (*models.SyncLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, lastSyncLogForDevice, deviceID)
	syncLog, err := scanSyncLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*syncLogRepository.LastForDevice").Msg("error scanning sync log")
		return nil, err
	}

	return syncLog, nil
}

// NextChangeCursor reserves the next change stream position from the
// database sequence.
func (r *syncLogRepository) NextChangeCursor(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var cursor int64
	if err := r.db.QueryRowContext(ctx, nextChangeCursor).Scan(&cursor); err != nil {
		log.Err(err).Str("func", "*syncLogRepository.NextChangeCursor").Msg("error reserving change cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cursor, nil
}

// DeviceIDs lists every device with sync history.
func (r *syncLogRepository) DeviceIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, syncLogDeviceIDs)
	if err != nil {
		log.Err(err).Str("func", "*syncLogRepository.DeviceIDs").Msg("error listing device ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncLog(row rowScanner) (*models.SyncLog, error) {
	var syncLog models.SyncLog
	var cases, dependent, owners []byte

	if err := row.Scan(&syncLog.ID, &syncLog.Date, &syncLog.DeviceID, &syncLog.PreviousLogID,
		&syncLog.ChangeCursor, &cases, &dependent, &owners); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(cases, &syncLog.CasesOnDevice); err != nil {
		return nil, fmt.Errorf("%w: cases_on_device: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(dependent, &syncLog.DependentCasesOnDevice); err != nil {
		return nil, fmt.Errorf("%w: dependent_cases_on_device: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(owners, &syncLog.OwnerIDsOnDevice); err != nil {
		return nil, fmt.Errorf("%w: owner_ids_on_device: %w", ErrScanningRow, err)
	}

	return &syncLog, nil
}

func marshalSyncLogSets(syncLog *models.SyncLog) (cases, dependent, owners []byte, err error) {
	if cases, err = json.Marshal(emptyIfNilStates(syncLog.CasesOnDevice)); err != nil {
		return nil, nil, nil, err
	}
	if dependent, err = json.Marshal(emptyIfNilStates(syncLog.DependentCasesOnDevice)); err != nil {
		return nil, nil, nil, err
	}
	if owners, err = json.Marshal(emptyIfNilStrings(syncLog.OwnerIDsOnDevice)); err != nil {
		return nil, nil, nil, err
	}
	return cases, dependent, owners, nil
}

// jsonb columns are NOT NULL; nil slices marshal to JSON null, so coerce.

func emptyIfNilStates(states []models.CaseState) []models.CaseState {
	if states == nil {
		return []models.CaseState{}
	}
	return states
}

func emptyIfNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
