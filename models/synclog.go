package models

import "time"

// CaseState is the per-case tracking unit inside a sync log: the case id plus
// the case's current index relations as of that sync. It is owned by its
// containing SyncLog; replacing the index set is the only mutation.
type CaseState struct {
	CaseID  string      `json:"case_id" bson:"case_id"`
	Indices []CaseIndex `json:"indices" bson:"indices"`
}

// ReplaceIndices swaps the full index set. Index updates are total
// replacements, never merges.
func (cs *CaseState) ReplaceIndices(indices []CaseIndex) {
	cs.Indices = indices
}

// SyncLog records a single synchronization exchange for one device. Logs form
// a singly-linked chain per device through PreviousLogID (newest to oldest);
// an empty PreviousLogID marks the device's first sync. Once persisted a log
// is immutable history and is only ever read back via the chain.
//
// CasesOnDevice is the set of cases the server believes are materialized on
// the device. DependentCasesOnDevice is the best-effort set of cases possibly
// present only because a live case's index references them (or because they
// were archived by a close); it is reconciled by pruning, not guaranteed
// exact. A case id never appears in both sets within one log.
type SyncLog struct {
	ID            string    `json:"id" bson:"_id"`
	Date          time.Time `json:"date" bson:"date"`
	DeviceID      string    `json:"device_id" bson:"device_id"`
	PreviousLogID string    `json:"previous_log_id,omitempty" bson:"previous_log_id"`

	// ChangeCursor is the opaque position in the global change stream at
	// the time this log was created.
	ChangeCursor int64 `json:"change_cursor" bson:"change_cursor"`

	CasesOnDevice          []CaseState `json:"cases_on_device" bson:"cases_on_device"`
	DependentCasesOnDevice []CaseState `json:"dependent_cases_on_device" bson:"dependent_cases_on_device"`
	OwnerIDsOnDevice       []string    `json:"owner_ids_on_device" bson:"owner_ids_on_device"`
}

// HasCase reports whether the device currently holds the case according to
// this log. Returns a ConsistencyError if the log carries duplicate entries
// for the id, which indicates corrupted history.
func (s *SyncLog) HasCase(caseID string) (bool, error) {
	state, err := s.CaseStateFor(caseID)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}

// CaseStateFor returns the CaseState tracked for caseID in CasesOnDevice, or
// nil if the device does not hold the case. Duplicate entries for one id are
// a structural invariant violation and surface as a ConsistencyError; the
// check always runs and is never silently repaired.
func (s *SyncLog) CaseStateFor(caseID string) (*CaseState, error) {
	return stateFor(s, "cases_on_device", s.CasesOnDevice, caseID)
}

// HasDependentCase mirrors HasCase for the dependent set.
func (s *SyncLog) HasDependentCase(caseID string) (bool, error) {
	state, err := s.DependentCaseStateFor(caseID)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}

// DependentCaseStateFor mirrors CaseStateFor for the dependent set.
func (s *SyncLog) DependentCaseStateFor(caseID string) (*CaseState, error) {
	return stateFor(s, "dependent_cases_on_device", s.DependentCasesOnDevice, caseID)
}

func stateFor(s *SyncLog, set string, states []CaseState, caseID string) (*CaseState, error) {
	var found *CaseState
	for i := range states {
		if states[i].CaseID != caseID {
			continue
		}
		if found != nil {
			return nil, &ConsistencyError{
				SyncLogID: s.ID,
				DeviceID:  s.DeviceID,
				CaseID:    caseID,
				Detail:    "duplicate entry in " + set,
			}
		}
		found = &states[i]
	}
	return found, nil
}

// AddCase inserts a fresh CaseState with an empty index set.
func (s *SyncLog) AddCase(caseID string) {
	s.CasesOnDevice = append(s.CasesOnDevice, CaseState{CaseID: caseID, Indices: []CaseIndex{}})
}

// ArchiveCase moves the case's entry from CasesOnDevice to
// DependentCasesOnDevice. Closed cases are archived, never deleted, so the
// historical footprint stays reconstructible. The caller must have verified
// the case is present.
func (s *SyncLog) ArchiveCase(caseID string) error {
	state, err := s.CaseStateFor(caseID)
	if err != nil {
		return err
	}
	if state == nil {
		return &ConsistencyError{
			SyncLogID: s.ID,
			DeviceID:  s.DeviceID,
			CaseID:    caseID,
			Detail:    "archive of a case not on device",
		}
	}

	archived := *state
	kept := make([]CaseState, 0, len(s.CasesOnDevice)-1)
	for _, cs := range s.CasesOnDevice {
		if cs.CaseID != caseID {
			kept = append(kept, cs)
		}
	}
	s.CasesOnDevice = kept
	s.DependentCasesOnDevice = append(s.DependentCasesOnDevice, archived)
	return nil
}

// CaseIDsOnDevice returns the ids in CasesOnDevice in order.
func (s *SyncLog) CaseIDsOnDevice() []string {
	ids := make([]string, 0, len(s.CasesOnDevice))
	for _, cs := range s.CasesOnDevice {
		ids = append(ids, cs.CaseID)
	}
	return ids
}

// DependentCaseIDsOnDevice returns the ids in DependentCasesOnDevice in order.
func (s *SyncLog) DependentCaseIDsOnDevice() []string {
	ids := make([]string, 0, len(s.DependentCasesOnDevice))
	for _, cs := range s.DependentCasesOnDevice {
		ids = append(ids, cs.CaseID)
	}
	return ids
}
