package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCellNotFound is returned when no labels are stored for a cell.
	ErrCellNotFound = errors.New("journal cell was not found")

	// ErrInvalidCell is returned when the schema rejects a cell, e.g. an
	// unknown kind.
	ErrInvalidCell = errors.New("journal cell was rejected by storage")

	// ErrUnsupportedDSN is returned by NewStorages for an empty DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan journal cell row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan journal cell rows")

	// ErrDecodingLabels is returned when the stored labels column is not a
	// JSON array of strings.
	ErrDecodingLabels = errors.New("failed to decode stored labels")
)
