package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match a single row
	// produces an empty result set.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when applying a row fails a
	// relational constraint, typically a missing parent row because the
	// dependency-ordered table list was violated or the parent has not been
	// pulled yet. The sync orchestrator records it and continues.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnknownTable is returned when a sync operation names a table that
	// is not in the syncable set. Table names reach SQL by interpolation,
	// so only registered names are ever accepted.
	ErrUnknownTable = errors.New("unknown sync table")

	// ErrMissingSyncColumns is returned by UpsertFromRemote when an incoming
	// remote row lacks the id or updated_at column and therefore cannot be
	// merged.
	ErrMissingSyncColumns = errors.New("remote record missing id or updated_at")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
