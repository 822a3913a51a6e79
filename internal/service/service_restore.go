package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/internal/utils"
	"github.com/fieldtrack/syncserver/internal/wire"
	"github.com/fieldtrack/syncserver/models"
)

type restoreService struct {
	syncLogs store.SyncLogRepository
	devices  store.DeviceRepository
	resolver OwnershipResolver

	// locks serializes exchanges per device within this process. Chains of
	// different devices are independent, so devices never block each other.
	// Across processes the unique chain-tail constraint at save time is the
	// backstop; it fails the later writer with ErrChainConflict.
	locks *utils.KeyedMutex
	uuid  *utils.UUIDGenerator

	defaultVersion string
	maxRetries     int

	logger *logger.Logger
}

func NewRestoreService(syncLogs store.SyncLogRepository, devices store.DeviceRepository, resolver OwnershipResolver, cfg config.App, logger *logger.Logger) RestoreService {
	defaultVersion := cfg.DefaultProtocolVersion
	if defaultVersion == "" {
		// legacy devices omit the version field and expect the 1.0 shape
		defaultVersion = wire.V1
	}

	return &restoreService{
		syncLogs:       syncLogs,
		devices:        devices,
		resolver:       resolver,
		locks:          utils.NewKeyedMutex(),
		uuid:           utils.NewUUIDGenerator(),
		defaultVersion: defaultVersion,
		maxRetries:     cfg.MaxConflictRetries,
		logger:         logger,
	}
}

// Restore runs one synchronization exchange. Chain conflicts are retried
// transparently from a fresh read, up to the configured budget; every other
// error aborts the exchange uncommitted and propagates.
func (s *restoreService) Restore(ctx context.Context, req models.RestoreRequest) (models.RestoreResult, error) {
	if req.DeviceID == "" {
		return models.RestoreResult{}, ErrEmptyDeviceID
	}

	version := req.Version
	if version == "" {
		version = s.defaultVersion
	}
	if err := wire.CheckVersion(version); err != nil {
		return models.RestoreResult{}, err
	}

	s.locks.Lock(req.DeviceID)
	defer s.locks.Unlock(req.DeviceID)

	device, err := s.devices.Get(ctx, req.DeviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return models.RestoreResult{}, fmt.Errorf("%w: %s", ErrUnknownDevice, req.DeviceID)
	}
	if err != nil {
		return models.RestoreResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		result, err := s.exchange(ctx, device, req, version)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, store.ErrChainConflict) {
			return models.RestoreResult{}, err
		}

		lastErr = err
		s.logger.Warn().
			Str("device_id", req.DeviceID).
			Int("attempt", attempt+1).
			Msg("sync log chain conflict, retrying exchange from a fresh read")
	}

	return models.RestoreResult{}, fmt.Errorf("%w: %v", ErrTooManyConflicts, lastErr)
}

// exchange is one attempt at the full unit of work: read the chain tail,
// resolve candidates, build and update the new log, persist it, render the
// response. Nothing is persisted before the final save, so an abort at any
// point leaves no partial state.
func (s *restoreService) exchange(ctx context.Context, device models.Device, req models.RestoreRequest, version string) (models.RestoreResult, error) {
	last, err := s.syncLogs.LastForDevice(ctx, device.DeviceID)
	if err != nil {
		return models.RestoreResult{}, err
	}

	candidates, err := s.resolver.CandidateUpdates(ctx, device, last)
	if err != nil {
		return models.RestoreResult{}, err
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Case.CaseID < candidates[j].Case.CaseID
	})

	newLog, err := s.buildLog(device, last, candidates, req.Actions)
	if err != nil {
		return models.RestoreResult{}, err
	}

	cursor, err := s.syncLogs.NextChangeCursor(ctx)
	if err != nil {
		return models.RestoreResult{}, err
	}
	newLog.ChangeCursor = cursor

	if err := s.syncLogs.Save(ctx, newLog); err != nil {
		return models.RestoreResult{}, err
	}

	body, err := s.renderResponse(newLog, device, last == nil, candidates, version)
	if err != nil {
		return models.RestoreResult{}, err
	}

	s.logger.Info().
		Str("device_id", device.DeviceID).
		Str("sync_log_id", newLog.ID).
		Int("cases_on_device", len(newLog.CasesOnDevice)).
		Int("dependent_cases", len(newLog.DependentCasesOnDevice)).
		Msg("synchronization exchange committed")

	return models.RestoreResult{SyncLog: newLog, Body: body}, nil
}

// buildLog constructs the successor log: the candidate set seeds the live
// set, dependents carry over from the predecessor, server-side closed cases
// are archived, the submitted action batch is applied, and unreferenced
// carried-over dependents are pruned. The predecessor itself is never
// mutated.
func (s *restoreService) buildLog(device models.Device, last *models.SyncLog, candidates []models.CandidateUpdate, actions []models.CaseAction) (*models.SyncLog, error) {
	newLog := &models.SyncLog{
		ID:                     s.uuid.Generate(),
		Date:                   time.Now().UTC(),
		DeviceID:               device.DeviceID,
		OwnerIDsOnDevice:       device.OwnerIDs,
		CasesOnDevice:          []models.CaseState{},
		DependentCasesOnDevice: []models.CaseState{},
	}
	if last != nil {
		newLog.PreviousLogID = last.ID
	}

	var closing []string
	for _, cand := range candidates {
		if skipCandidate(cand) {
			continue
		}
		newLog.CasesOnDevice = append(newLog.CasesOnDevice, models.CaseState{
			CaseID:  cand.Case.CaseID,
			Indices: cloneIndices(cand.Case.Indices),
		})
		if cand.Case.Closed {
			closing = append(closing, cand.Case.CaseID)
		}
	}

	carried := make(map[string]struct{})
	if last != nil {
		for _, cs := range last.DependentCasesOnDevice {
			if onDevice, err := newLog.HasCase(cs.CaseID); err != nil {
				return nil, err
			} else if onDevice {
				continue
			}
			newLog.DependentCasesOnDevice = append(newLog.DependentCasesOnDevice, cs)
			carried[cs.CaseID] = struct{}{}
		}
	}

	for _, caseID := range closing {
		if err := newLog.ArchiveCase(caseID); err != nil {
			return nil, err
		}
	}

	if err := ApplyActions(newLog, actions); err != nil {
		return nil, err
	}

	pruneDependents(newLog, carried)
	return newLog, nil
}

// skipCandidate filters closed cases the device has never held; there is
// nothing to close on the device and nothing to create either.
func skipCandidate(cand models.CandidateUpdate) bool {
	return cand.Case.Closed && !cand.PreviouslySynced
}

// pruneDependents drops carried-over dependent entries no longer reachable
// through index references from the live set. Entries archived during this
// exchange are kept unconditionally; a close archives, never deletes.
func pruneDependents(log *models.SyncLog, carried map[string]struct{}) {
	referenced := make(map[string]struct{})
	for _, cs := range log.CasesOnDevice {
		for _, idx := range cs.Indices {
			referenced[idx.ReferencedID] = struct{}{}
		}
	}

	// Expand through dependent-to-dependent references to a fixpoint.
	for {
		grew := false
		for _, cs := range log.DependentCasesOnDevice {
			if _, ok := referenced[cs.CaseID]; !ok {
				continue
			}
			for _, idx := range cs.Indices {
				if _, ok := referenced[idx.ReferencedID]; !ok {
					referenced[idx.ReferencedID] = struct{}{}
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	kept := make([]models.CaseState, 0, len(log.DependentCasesOnDevice))
	for _, cs := range log.DependentCasesOnDevice {
		_, wasCarried := carried[cs.CaseID]
		_, isReferenced := referenced[cs.CaseID]
		if !wasCarried || isReferenced {
			kept = append(kept, cs)
		}
	}
	log.DependentCasesOnDevice = kept
}

func (s *restoreService) renderResponse(newLog *models.SyncLog, device models.Device, firstContact bool, candidates []models.CandidateUpdate, version string) ([]byte, error) {
	root := wire.SyncElement(newLog.ID)
	if firstContact {
		root.AddChild(wire.RegistrationElement(device))
	}

	for _, cand := range candidates {
		if skipCandidate(cand) {
			continue
		}

		el, err := wire.CaseElement(cand.Case, responseKinds(cand), version)
		if err != nil {
			return nil, err
		}
		root.AddChild(el)
	}

	return wire.Serialize(root)
}

// responseKinds picks the action kinds a candidate is rendered with: a case
// new to the device gets create plus update, a previously synced case gets
// update only, and a closed case the device holds gets close.
func responseKinds(cand models.CandidateUpdate) []models.ActionKind {
	switch {
	case cand.Case.Closed:
		return []models.ActionKind{models.ActionClose}
	case cand.PreviouslySynced:
		return []models.ActionKind{models.ActionUpdate}
	default:
		return []models.ActionKind{models.ActionCreate, models.ActionUpdate}
	}
}

func cloneIndices(indices []models.CaseIndex) []models.CaseIndex {
	cloned := make([]models.CaseIndex, len(indices))
	copy(cloned, indices)
	return cloned
}
