package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncLogNotFound is returned when a sync log id resolves to nothing.
	// Chain traversal treats this as a data-integrity failure, not a normal
	// end of chain.
	ErrSyncLogNotFound = errors.New("sync log was not found")

	// ErrCaseNotFound is returned when a case id resolves to nothing.
	ErrCaseNotFound = errors.New("case was not found")

	// ErrDeviceNotFound is returned when a device id resolves to nothing.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrDeviceAlreadyExists is returned when enrolling a device whose id
	// or username is already taken.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrChainConflict is returned when persisting a sync log loses a race:
	// another exchange has already extended the same chain tail. The
	// exchange is retried from a fresh read, up to a bounded count.
	ErrChainConflict = errors.New("sync log chain conflict")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
