package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown sync-log backend, or the mongo backend selected
	// without a connection string).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidResolverConfigs indicates invalid ownership-resolver
	// settings (for example, a base URL without a timeout).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative conflict-retry bound).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
