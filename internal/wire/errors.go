package wire

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is the matching target for [errors.Is] against
// [UnsupportedVersionError].
var ErrUnsupportedVersion = errors.New("unsupported protocol version")

// UnsupportedVersionError reports a protocol version the server does not
// recognize. It surfaces to the caller as a negotiation failure and is not
// retried.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version %q (supported: %v)", e.Version, SupportedVersions)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
