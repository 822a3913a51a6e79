package models

// ActionKind enumerates the discrete mutations a device can submit for a
// single case within one submission.
type ActionKind string

const (
	ActionCreate   ActionKind = "create"
	ActionUpdate   ActionKind = "update"
	ActionAddIndex ActionKind = "index"
	ActionClose    ActionKind = "close"

	// ActionPurge is accepted on the wire as a synonym for close when
	// rendering responses; the ledger state machine never receives it.
	ActionPurge ActionKind = "purge"
)

// CaseAction is one mutation extracted from an inbound submission.
// Actions are applied to the sync ledger strictly in submission order.
type CaseAction struct {
	// CaseID identifies the case the action mutates.
	CaseID string `json:"case_id"`

	// SubmissionID identifies the submission the action was extracted from.
	SubmissionID string `json:"submission_id"`

	// Kind is the mutation type. Purge never appears here; the action
	// extractor normalizes it to Close before the ledger sees it.
	Kind ActionKind `json:"kind"`

	// Indices carries the replacement index set for AddIndex actions.
	// Empty for every other kind.
	Indices []CaseIndex `json:"indices,omitempty"`
}

// HasKind reports whether any action in the batch is of the given kind.
func HasKind(actions []CaseAction, kind ActionKind) bool {
	for _, a := range actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
