package service

import (
	"context"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/models"
)

// footprintService computes cumulative chain views. It also implements
// ChainAuditService, since an audit is the same traversal with integrity
// checks instead of a projection.
type footprintService struct {
	syncLogs store.SyncLogRepository

	logger *logger.Logger
}

func NewFootprintService(syncLogs store.SyncLogRepository, logger *logger.Logger) *footprintService {
	return &footprintService{
		syncLogs: syncLogs,
		logger:   logger,
	}
}

func (f *footprintService) CasesEverSynced(ctx context.Context, deviceID string) (map[string]struct{}, error) {
	last, err := f.syncLogs.LastForDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	resolver := newChainResolver(f.syncLogs)
	return walkChain(ctx, resolver, last, func(log *models.SyncLog) []string {
		return append(log.CaseIDsOnDevice(), log.DependentCaseIDsOnDevice()...)
	})
}

// AllCasesSeen is the "every case this device has ever observed" projection,
// which differs from CasesEverSynced by cases the device learned about
// through index references without ever holding them. The derivation of that
// wider set from chain history alone is unresolved, so the operation reports
// the gap explicitly instead of returning a plausible wrong answer.
func (f *footprintService) AllCasesSeen(ctx context.Context, deviceID string) (map[string]struct{}, error) {
	return nil, fmt.Errorf("all cases seen for device %s: %w", deviceID, models.ErrNotImplemented)
}

// OpenCaseIDs derives the currently open set: (all cases seen, union cases
// created by the device) minus (cases closed by the device, union cases
// already archived as dependent). The first operand is AllCasesSeen, so the
// whole derivation propagates ErrNotImplemented until that projection is
// completed.
func (f *footprintService) OpenCaseIDs(ctx context.Context, deviceID string) (map[string]struct{}, error) {
	seen, err := f.AllCasesSeen(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("open cases: %w", err)
	}

	last, err := f.syncLogs.LastForDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	resolver := newChainResolver(f.syncLogs)
	closedOrDependent, err := walkChain(ctx, resolver, last, func(log *models.SyncLog) []string {
		return log.DependentCaseIDsOnDevice()
	})
	if err != nil {
		return nil, err
	}

	open := make(map[string]struct{}, len(seen))
	for id := range seen {
		if _, gone := closedOrDependent[id]; !gone {
			open[id] = struct{}{}
		}
	}
	return open, nil
}

func (f *footprintService) DeviceIDs(ctx context.Context) ([]string, error) {
	return f.syncLogs.DeviceIDs(ctx)
}

// AuditChain walks the device's full chain, checking every log for duplicate
// entries and every back-link for resolvability and absence of cycles.
// Returns the chain length.
func (f *footprintService) AuditChain(ctx context.Context, deviceID string) (int, error) {
	last, err := f.syncLogs.LastForDevice(ctx, deviceID)
	if err != nil {
		return 0, err
	}

	length := 0
	resolver := newChainResolver(f.syncLogs)
	visited := make(map[string]struct{})
	for current := last; current != nil; {
		if err := ctx.Err(); err != nil {
			return length, err
		}

		if err := markVisited(visited, current); err != nil {
			return length, err
		}

		if err := checkDuplicates(current); err != nil {
			return length, err
		}
		length++

		prev, err := resolver.previous(ctx, current)
		if err != nil {
			return length, err
		}
		current = prev
	}
	return length, nil
}

func checkDuplicates(log *models.SyncLog) error {
	for _, id := range log.CaseIDsOnDevice() {
		if _, err := log.CaseStateFor(id); err != nil {
			return err
		}
		if dependent, err := log.HasDependentCase(id); err != nil {
			return err
		} else if dependent {
			return &models.ConsistencyError{
				SyncLogID: log.ID,
				DeviceID:  log.DeviceID,
				CaseID:    id,
				Detail:    "case present in both the live and dependent sets",
			}
		}
	}
	for _, id := range log.DependentCaseIDsOnDevice() {
		if _, err := log.DependentCaseStateFor(id); err != nil {
			return err
		}
	}
	return nil
}
