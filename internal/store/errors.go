package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDataNotFound is returned when no slot exists for the requested key.
	ErrDataNotFound = errors.New("contract data was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// another writer changed the slot after it was read.
	ErrVersionConflict = errors.New("contract data version conflict occurred")

	// ErrStorageUnavailable wraps driver errors classified as transient
	// (lost connection, lock contention, server shutting down).
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")

	// ErrUnsupportedDSN is returned when the DSN is empty.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan contract data row")
)
