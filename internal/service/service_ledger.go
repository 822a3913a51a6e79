package service

import "github.com/fieldtrack/syncserver/models"

// Membership labels carried in InvalidTransitionError messages.
const (
	membershipOnDevice    = "case on device"
	membershipDependent   = "dependent case on device"
	membershipNotOnDevice = "case not on device"
)

// ApplyActions runs the ledger update state machine: the ordered action batch
// from one submission is applied to the in-memory log, one action at a time.
//
//	Create    case must not be on the device; inserts an entry with no indices
//	Update    case must be on the device; membership is unchanged (the case
//	          data itself lives in the case store, not the ledger)
//	AddIndex  case must be on the device; replaces the entry's index set
//	Close     case must be on the device; archives the entry to the
//	          dependent set
//
// A precondition failure aborts the remaining batch with an
// InvalidTransitionError; partial effects on the in-memory log are never
// persisted because the caller only saves on full success. Purge never
// reaches the ledger; the action extractor normalizes it to Close.
func ApplyActions(log *models.SyncLog, actions []models.CaseAction) error {
	for _, action := range actions {
		if err := applyAction(log, action); err != nil {
			return err
		}
	}
	return nil
}

func applyAction(log *models.SyncLog, action models.CaseAction) error {
	state, err := log.CaseStateFor(action.CaseID)
	if err != nil {
		return err
	}
	onDevice := state != nil

	switch action.Kind {
	case models.ActionCreate:
		if onDevice {
			return transitionError(log, action, membershipNotOnDevice)
		}
		log.AddCase(action.CaseID)
		return nil

	case models.ActionUpdate:
		if !onDevice {
			return transitionError(log, action, membershipOnDevice)
		}
		return nil

	case models.ActionAddIndex:
		if !onDevice {
			return transitionError(log, action, membershipOnDevice)
		}
		state.ReplaceIndices(action.Indices)
		return nil

	case models.ActionClose:
		if !onDevice {
			return transitionError(log, action, membershipOnDevice)
		}
		return log.ArchiveCase(action.CaseID)

	default:
		return transitionError(log, action, "known action kind")
	}
}

func transitionError(log *models.SyncLog, action models.CaseAction, expected string) error {
	return &models.InvalidTransitionError{
		DeviceID: log.DeviceID,
		CaseID:   action.CaseID,
		Kind:     action.Kind,
		Expected: expected,
		Actual:   membership(log, action.CaseID),
	}
}

func membership(log *models.SyncLog, caseID string) string {
	if onDevice, err := log.HasCase(caseID); err == nil && onDevice {
		return membershipOnDevice
	}
	if dependent, err := log.HasDependentCase(caseID); err == nil && dependent {
		return membershipDependent
	}
	return membershipNotOnDevice
}
