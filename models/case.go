package models

import "time"

// Case is the authoritative current state of one record. The sync ledger only
// tracks membership and index relations; value fields live here, resolved on
// demand from the case store.
type Case struct {
	// CaseID is the globally unique case identifier.
	CaseID string `json:"case_id"`

	// Type is the case type label (e.g. "patient", "household").
	Type string `json:"type"`

	// Name is the human-readable case name.
	Name string `json:"name"`

	// UserID is the user that submitted the case.
	UserID string `json:"user_id"`

	// OwnerID is the owning entity the case is filed under. Falls back to
	// UserID on the wire when empty.
	OwnerID string `json:"owner_id"`

	// ExternalID is an optional identifier assigned by an outside system.
	ExternalID string `json:"external_id,omitempty"`

	OpenedOn   time.Time  `json:"opened_on"`
	ModifiedOn time.Time  `json:"modified_on"`
	ClosedOn   *time.Time `json:"closed_on,omitempty"`
	Closed     bool       `json:"closed"`

	// Indices are the case's named references to other cases.
	Indices []CaseIndex `json:"indices,omitempty"`

	// Referrals are follow-up items attached to the case. They are rendered
	// in sync responses unless the case is being closed.
	Referrals []Referral `json:"referrals,omitempty"`

	// Properties holds the dynamic (schema-less) case properties rendered
	// into the update block of a sync response.
	Properties map[string]CaseValue `json:"properties,omitempty"`
}

// OwnerOrUserID returns OwnerID when set and UserID otherwise.
func (c Case) OwnerOrUserID() string {
	if c.OwnerID != "" {
		return c.OwnerID
	}
	return c.UserID
}

// CaseIndex is a named reference from one case to another. Indices drive the
// dependent-case closure: a referenced case may need to stay on a device only
// because something else points at it.
type CaseIndex struct {
	// Name is the relationship label (e.g. "parent").
	Name string `json:"name" bson:"name"`

	// ReferencedID is the case id the index points to.
	ReferencedID string `json:"referenced_id" bson:"referenced_id"`

	// ReferencedType is the case type of the referenced case.
	ReferencedType string `json:"referenced_type" bson:"referenced_type"`
}

// Referral is a follow-up item attached to a case.
type Referral struct {
	ReferralID string     `json:"referral_id"`
	Type       string     `json:"type"`
	OpenedOn   time.Time  `json:"opened_on"`
	ModifiedOn time.Time  `json:"modified_on"`
	FollowupOn *time.Time `json:"followup_on,omitempty"`
	Closed     bool       `json:"closed"`
}

// CaseValue is a tagged dynamic property value: either a plain scalar or text
// carrying attribute metadata. Having one explicit representation lets the
// serializer and any export consumer agree without runtime type inspection.
type CaseValue struct {
	// Text is the scalar value.
	Text string `json:"text"`

	// Attrs holds attribute metadata for values that carry it. Nil for
	// plain scalars.
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Scalar constructs a plain CaseValue with no attribute metadata.
func Scalar(text string) CaseValue {
	return CaseValue{Text: text}
}
