package adapter

import (
	"context"

	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/models"
)

// localOwnershipResolver derives candidate updates straight from the case
// store, for deployments without a separate ownership service. A case is a
// candidate when it is open and owned by one of the device's owner ids, or
// when the device already holds it and it has since been closed (the device
// must still be told to close it). It satisfies service.OwnershipResolver.
type localOwnershipResolver struct {
	cases store.CaseRepository
}

func NewLocalOwnershipResolver(cases store.CaseRepository) *localOwnershipResolver {
	return &localOwnershipResolver{cases: cases}
}

func (l *localOwnershipResolver) CandidateUpdates(ctx context.Context, device models.Device, since *models.SyncLog) ([]models.CandidateUpdate, error) {
	owned, err := l.cases.OpenByOwners(ctx, device.OwnerIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.CandidateUpdate, 0, len(owned))
	ownedIDs := make(map[string]struct{}, len(owned))
	for _, c := range owned {
		ownedIDs[c.CaseID] = struct{}{}
		candidates = append(candidates, models.CandidateUpdate{
			Case:             c,
			PreviouslySynced: heldByDevice(since, c.CaseID),
		})
	}

	closed, err := l.closedHeldCases(ctx, since, ownedIDs)
	if err != nil {
		return nil, err
	}
	return append(candidates, closed...), nil
}

// closedHeldCases finds cases the device holds per its last log that did not
// come back from the owned-open query, and reports the ones that are now
// closed so the exchange can archive them.
func (l *localOwnershipResolver) closedHeldCases(ctx context.Context, since *models.SyncLog, ownedIDs map[string]struct{}) ([]models.CandidateUpdate, error) {
	if since == nil {
		return nil, nil
	}

	var missing []string
	for _, id := range since.CaseIDsOnDevice() {
		if _, ok := ownedIDs[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	held, err := l.cases.GetMany(ctx, missing)
	if err != nil {
		return nil, err
	}

	var candidates []models.CandidateUpdate
	for _, id := range missing {
		c, ok := held[id]
		if !ok || !c.Closed {
			continue
		}
		candidates = append(candidates, models.CandidateUpdate{Case: c, PreviouslySynced: true})
	}
	return candidates, nil
}

func heldByDevice(since *models.SyncLog, caseID string) bool {
	if since == nil {
		return false
	}
	if held, err := since.HasCase(caseID); err == nil && held {
		return true
	}
	if dependent, err := since.HasDependentCase(caseID); err == nil && dependent {
		return true
	}
	return false
}
