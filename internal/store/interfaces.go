package store

import (
	"context"

	"github.com/fieldtrack/syncserver/models"
)

// SyncLogRepository persists the per-device sync-log chain. Implementations
// must guarantee read-your-writes consistency within one exchange and detect
// concurrent chain extension at save time.
type SyncLogRepository interface {
	// Get loads one sync log by id. Returns ErrSyncLogNotFound when the id
	// is unknown.
	Get(ctx context.Context, id string) (*models.SyncLog, error)

	// LastForDevice returns the most recent sync log for a device by
	// creation time, or (nil, nil) when the device has no sync history.
	LastForDevice(ctx context.Context, deviceID string) (*models.SyncLog, error)

	// Save persists a new sync log. Two concurrent exchanges extending the
	// same chain tail fail the later writer with ErrChainConflict; the
	// caller retries from a fresh read.
	Save(ctx context.Context, log *models.SyncLog) error

	// NextChangeCursor reserves the next position in the global change
	// stream.
	NextChangeCursor(ctx context.Context) (int64, error)

	// DeviceIDs lists every device with at least one sync log.
	DeviceIDs(ctx context.Context) ([]string, error)
}

// CaseRepository resolves case ids to their authoritative current data.
type CaseRepository interface {
	// Get loads one case. Returns ErrCaseNotFound when the id is unknown.
	Get(ctx context.Context, caseID string) (models.Case, error)

	// GetMany loads a batch of cases keyed by id. Unknown ids are simply
	// absent from the result.
	GetMany(ctx context.Context, caseIDs []string) (map[string]models.Case, error)

	// OpenByOwners lists open cases owned by any of the given owner ids,
	// ordered by case id.
	OpenByOwners(ctx context.Context, ownerIDs []string) ([]models.Case, error)

	// Save upserts a case document.
	Save(ctx context.Context, c models.Case) error
}

// DeviceRepository persists enrolled devices.
type DeviceRepository interface {
	// Create persists a new device. Returns ErrDeviceAlreadyExists when the
	// device id is taken.
	Create(ctx context.Context, device models.Device) (models.Device, error)

	// Get loads one device. Returns ErrDeviceNotFound when the id is
	// unknown.
	Get(ctx context.Context, deviceID string) (models.Device, error)
}
