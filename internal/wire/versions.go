package wire

// Supported protocol versions. V2 moved the identifying case attributes onto
// the root element and renamed the base-property elements; both remain
// deployed in the field.
const (
	V1 = "1.0"
	V2 = "2.0"
)

// SupportedVersions lists every protocol version this server can render.
var SupportedVersions = []string{V1, V2}

// CheckVersion validates a negotiated protocol version. It fails with an
// [UnsupportedVersionError] before any output is produced.
func CheckVersion(version string) error {
	for _, v := range SupportedVersions {
		if v == version {
			return nil
		}
	}
	return &UnsupportedVersionError{Version: version}
}
