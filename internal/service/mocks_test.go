package service

import (
	"context"

	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/models"
)

// ─────────────────────────────────────────────
// Mock: store.SyncLogRepository
// ─────────────────────────────────────────────

type mockSyncLogRepository struct {
	getFn              func(ctx context.Context, id string) (*models.SyncLog, error)
	lastForDeviceFn    func(ctx context.Context, deviceID string) (*models.SyncLog, error)
	saveFn             func(ctx context.Context, log *models.SyncLog) error
	nextChangeCursorFn func(ctx context.Context) (int64, error)
	deviceIDsFn        func(ctx context.Context) ([]string, error)
}

func (m *mockSyncLogRepository) Get(ctx context.Context, id string) (*models.SyncLog, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSyncLogRepository) LastForDevice(ctx context.Context, deviceID string) (*models.SyncLog, error) {
	if m.lastForDeviceFn != nil {
		return m.lastForDeviceFn(ctx, deviceID)
	}
	return nil, nil
}

func (m *mockSyncLogRepository) Save(ctx context.Context, log *models.SyncLog) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, log)
	}
	return nil
}

func (m *mockSyncLogRepository) NextChangeCursor(ctx context.Context) (int64, error) {
	if m.nextChangeCursorFn != nil {
		return m.nextChangeCursorFn(ctx)
	}
	return 1, nil
}

func (m *mockSyncLogRepository) DeviceIDs(ctx context.Context) ([]string, error) {
	if m.deviceIDsFn != nil {
		return m.deviceIDsFn(ctx)
	}
	return nil, nil
}

// chainLogs builds a Get/LastForDevice pair backed by an in-memory map, for
// tests that only need a static chain.
func chainLogs(logs ...*models.SyncLog) *mockSyncLogRepository {
	byID := make(map[string]*models.SyncLog, len(logs))
	for _, l := range logs {
		byID[l.ID] = l
	}
	return &mockSyncLogRepository{
		getFn: func(_ context.Context, id string) (*models.SyncLog, error) {
			if l, ok := byID[id]; ok {
				return l, nil
			}
			return nil, store.ErrSyncLogNotFound
		},
		lastForDeviceFn: func(_ context.Context, deviceID string) (*models.SyncLog, error) {
			var last *models.SyncLog
			for _, l := range logs {
				if l.DeviceID == deviceID {
					last = l
				}
			}
			return last, nil
		},
	}
}

// ─────────────────────────────────────────────
// Mock: store.DeviceRepository
// ─────────────────────────────────────────────

type mockDeviceRepository struct {
	createFn func(ctx context.Context, device models.Device) (models.Device, error)
	getFn    func(ctx context.Context, deviceID string) (models.Device, error)
}

func (m *mockDeviceRepository) Create(ctx context.Context, device models.Device) (models.Device, error) {
	if m.createFn != nil {
		return m.createFn(ctx, device)
	}
	return device, nil
}

func (m *mockDeviceRepository) Get(ctx context.Context, deviceID string) (models.Device, error) {
	if m.getFn != nil {
		return m.getFn(ctx, deviceID)
	}
	return models.Device{DeviceID: deviceID}, nil
}

// ─────────────────────────────────────────────
// Mock: OwnershipResolver
// ─────────────────────────────────────────────

type mockResolver struct {
	candidateUpdatesFn func(ctx context.Context, device models.Device, since *models.SyncLog) ([]models.CandidateUpdate, error)
}

func (m *mockResolver) CandidateUpdates(ctx context.Context, device models.Device, since *models.SyncLog) ([]models.CandidateUpdate, error) {
	if m.candidateUpdatesFn != nil {
		return m.candidateUpdatesFn(ctx, device, since)
	}
	return nil, nil
}
