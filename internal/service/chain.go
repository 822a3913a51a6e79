package service

import (
	"context"
	"errors"

	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/models"
)

// chainResolver resolves sync-log back-links with a request-scoped cache.
// Each exchange or audit builds a fresh resolver, so one traversal never
// observes logs loaded by another and memory is released when the request
// ends.
type chainResolver struct {
	syncLogs store.SyncLogRepository
	cache    map[string]*models.SyncLog
}

func newChainResolver(syncLogs store.SyncLogRepository) *chainResolver {
	return &chainResolver{
		syncLogs: syncLogs,
		cache:    make(map[string]*models.SyncLog),
	}
}

// previous resolves the log's back-link. The contractual end of a chain is an
// empty PreviousLogID; a back-link that resolves to nothing is corrupted
// history and surfaces as a ConsistencyError, never as a normal chain end.
func (r *chainResolver) previous(ctx context.Context, log *models.SyncLog) (*models.SyncLog, error) {
	if log.PreviousLogID == "" {
		return nil, nil
	}

	if cached, ok := r.cache[log.PreviousLogID]; ok {
		return cached, nil
	}

	prev, err := r.syncLogs.Get(ctx, log.PreviousLogID)
	if errors.Is(err, store.ErrSyncLogNotFound) {
		return nil, &models.ConsistencyError{
			SyncLogID: log.ID,
			DeviceID:  log.DeviceID,
			Detail:    "previous sync log " + log.PreviousLogID + " is missing",
		}
	}
	if err != nil {
		return nil, err
	}

	r.cache[prev.ID] = prev
	return prev, nil
}

// walkChain applies projection to log and to every ancestor reachable through
// back-links, returning the deduplicated union. Accumulation is iterative, so
// arbitrarily long chains cost constant stack. A nil log yields an empty set.
// A back-link cycle is corrupted history and surfaces as a ConsistencyError
// rather than looping.
func walkChain[T comparable](ctx context.Context, r *chainResolver, log *models.SyncLog, projection func(*models.SyncLog) []T) (map[T]struct{}, error) {
	union := make(map[T]struct{})
	visited := make(map[string]struct{})

	for current := log; current != nil; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := markVisited(visited, current); err != nil {
			return nil, err
		}

		for _, v := range projection(current) {
			union[v] = struct{}{}
		}

		prev, err := r.previous(ctx, current)
		if err != nil {
			return nil, err
		}
		current = prev
	}

	return union, nil
}

// markVisited records the log id in visited, failing if the id has already
// been seen on this traversal: a revisit means the back-links form a cycle.
func markVisited(visited map[string]struct{}, log *models.SyncLog) error {
	if _, seen := visited[log.ID]; seen {
		return &models.ConsistencyError{
			SyncLogID: log.ID,
			DeviceID:  log.DeviceID,
			Detail:    "chain cycle at " + log.ID,
		}
	}
	visited[log.ID] = struct{}{}
	return nil
}
