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

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository].
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new device and returns the canonical stored
// representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDeviceAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *deviceRepository) Create(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	userData, err := json.Marshal(device.UserData)
	if err != nil {
		return models.Device{}, err
	}
	ownerIDs, err := json.Marshal(emptyIfNilStrings(device.OwnerIDs))
	if err != nil {
		return models.Device{}, err
	}

	row := r.db.QueryRowContext(ctx, createDevice,
		device.DeviceID, device.Username, device.Password, device.DateJoined, userData, ownerIDs)

	created, err := scanDevice(row)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.Create").Msg("error creating device")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Device{}, ErrDeviceAlreadyExists
		case "":
			return models.Device{}, err
		default:
			return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// Get loads one device by id.
func (r *deviceRepository) Get(ctx context.Context, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getDevice, deviceID)
	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.Get").Msg("error scanning device")
		return models.Device{}, err
	}

	return device, nil
}

func scanDevice(row rowScanner) (models.Device, error) {
	var device models.Device
	var userData, ownerIDs []byte

	if err := row.Scan(&device.DeviceID, &device.Username, &device.Password,
		&device.DateJoined, &userData, &ownerIDs); err != nil {
		return models.Device{}, err
	}

	if len(userData) > 0 {
		if err := json.Unmarshal(userData, &device.UserData); err != nil {
			return models.Device{}, fmt.Errorf("%w: user_data: %w", ErrScanningRow, err)
		}
	}
	if len(ownerIDs) > 0 {
		if err := json.Unmarshal(ownerIDs, &device.OwnerIDs); err != nil {
			return models.Device{}, fmt.Errorf("%w: owner_ids: %w", ErrScanningRow, err)
		}
	}

	return device, nil
}
