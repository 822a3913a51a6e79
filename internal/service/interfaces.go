package service

import (
	"context"

	"github.com/fieldtrack/syncserver/models"
)

// RestoreService runs one full synchronization exchange for a device:
// version negotiation, ledger chain extension, ledger update from the
// submitted actions, and rendering of the wire response.
type RestoreService interface {
	Restore(ctx context.Context, req models.RestoreRequest) (models.RestoreResult, error)
}

// RegistrationService enrolls devices.
type RegistrationService interface {
	Register(ctx context.Context, device models.Device) (models.Device, error)
}

// FootprintService derives cumulative views over a device's sync-log chain.
type FootprintService interface {
	// CasesEverSynced returns every case id that has ever appeared in any
	// log of the device's chain, live or dependent.
	CasesEverSynced(ctx context.Context, deviceID string) (map[string]struct{}, error)

	// AllCasesSeen is the projection the open-case derivation needs. Its
	// derivation is a known gap; it always returns ErrNotImplemented.
	AllCasesSeen(ctx context.Context, deviceID string) (map[string]struct{}, error)

	// OpenCaseIDs returns the set of cases believed currently open on the
	// device. It depends on AllCasesSeen and therefore propagates
	// ErrNotImplemented until that projection is completed.
	OpenCaseIDs(ctx context.Context, deviceID string) (map[string]struct{}, error)
}

// ChainAuditService verifies the structural integrity of sync-log chains.
type ChainAuditService interface {
	// DeviceIDs lists every device with sync history.
	DeviceIDs(ctx context.Context) ([]string, error)

	// AuditChain walks a device's full chain and returns its length.
	// Dangling back-links and duplicate entries surface as a
	// ConsistencyError.
	AuditChain(ctx context.Context, deviceID string) (int, error)
}

// OwnershipResolver supplies the set of cases potentially relevant to a
// device for one exchange. The engine only consumes its output.
type OwnershipResolver interface {
	CandidateUpdates(ctx context.Context, device models.Device, since *models.SyncLog) ([]models.CandidateUpdate, error)
}
