package models

import (
	"errors"
	"fmt"
)

// ErrConsistency and ErrInvalidTransition are matching targets for
// [errors.Is] against the typed errors below.
var (
	ErrConsistency       = errors.New("sync log consistency violation")
	ErrInvalidTransition = errors.New("invalid case transition")
)

// ErrNotImplemented is returned by operations whose derivation is a known,
// deliberate gap rather than a silent wrong answer.
var ErrNotImplemented = errors.New("operation not implemented")

// ConsistencyError reports a broken structural invariant in sync history:
// duplicate entries for one case id within a set, or a chain back-link that
// resolves to nothing. It is fatal to the current exchange and must never be
// silently repaired, since it indicates corrupted history.
type ConsistencyError struct {
	SyncLogID string
	DeviceID  string
	CaseID    string
	Detail    string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency violation in sync log %s (device %s, case %q): %s",
		e.SyncLogID, e.DeviceID, e.CaseID, e.Detail)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistency
}

// InvalidTransitionError reports a case action whose precondition failed,
// e.g. an update for a case the ledger claims the device does not hold. It
// aborts the whole batch uncommitted; it signals upstream corruption or a
// duplicate submission and is never auto-repaired.
type InvalidTransitionError struct {
	DeviceID string
	CaseID   string
	Kind     ActionKind
	Expected string // expected membership, e.g. "case on device"
	Actual   string // observed membership
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s action for case %s (device %s): expected %s, got %s",
		e.Kind, e.CaseID, e.DeviceID, e.Expected, e.Actual)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
