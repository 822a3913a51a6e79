package models

// CandidateUpdate is one record the ownership resolver considers relevant to
// a syncing device: the authoritative case data plus whether the device has
// already received the case in an earlier exchange.
type CandidateUpdate struct {
	Case             Case `json:"case"`
	PreviouslySynced bool `json:"previously_synced"`
}
