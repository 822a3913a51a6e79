package models

// RestoreRequest is the programmatic input to one synchronization exchange.
// Action extraction from the raw submission happens upstream; the engine
// receives the already-ordered per-case action lists.
type RestoreRequest struct {
	// DeviceID identifies the syncing device.
	DeviceID string `json:"device_id"`

	// Version is the wire protocol version negotiated by the device.
	Version string `json:"version"`

	// SubmissionID identifies the inbound submission this exchange
	// processes. Empty for a pure restore with no submitted actions.
	SubmissionID string `json:"submission_id,omitempty"`

	// Actions is the ordered action list extracted from the submission.
	Actions []CaseAction `json:"actions,omitempty"`
}

// RestoreResult is the outcome of one synchronization exchange: the persisted
// sync log and the serialized XML response body for the device.
type RestoreResult struct {
	SyncLog *SyncLog
	Body    []byte
}
