package models

import "time"

// Device represents a disconnected client (a phone) enrolled for
// synchronization. It carries the identity data rendered in the registration
// block on first contact.
type Device struct {
	// DeviceID is the unique device identifier.
	DeviceID string `json:"device_id"`

	// Username is the login of the user operating the device.
	Username string `json:"username"`

	// Password is the stored credential representation. This MUST be a
	// derived value (bcrypt hash), never plaintext; it is what the
	// registration block carries on the wire.
	Password string `json:"-"`

	// DateJoined is when the device was enrolled.
	DateJoined time.Time `json:"date_joined"`

	// UserData is optional flattened key/value device metadata, rendered as
	// a data block inside the registration element.
	UserData map[string]string `json:"user_data,omitempty"`

	// OwnerIDs are the owner identifiers the device is authorized for.
	OwnerIDs []string `json:"owner_ids,omitempty"`
}
