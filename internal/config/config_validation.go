// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// Supported sync-log store backends.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.SyncLogBackend {
	case "", BackendPostgres:
	case BackendMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo backend requires uri and database", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown sync log backend %q", ErrInvalidStorageConfigs, cfg.Storage.SyncLogBackend)
	}

	if cfg.Resolver.BaseURL != "" && cfg.Resolver.Timeout < 0 {
		return fmt.Errorf("%w: negative resolver timeout", ErrInvalidResolverConfigs)
	}

	if cfg.App.MaxConflictRetries < 0 {
		return fmt.Errorf("%w: negative conflict retry bound", ErrInvalidAppConfigs)
	}

	return nil
}
