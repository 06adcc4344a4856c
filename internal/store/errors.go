package store

import "errors"

// Sentinel errors returned by stores and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by [SlotStore.Get] for a slot that was
	// never written or has been deleted.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrCorruptedSlot is returned when a slot holds a document that cannot
	// be decoded.
	ErrCorruptedSlot = errors.New("slot content is corrupted")

	// ErrProjectNotFound is returned when a query or update targets a project
	// id that does not exist in the database.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrProjectAlreadyExists is returned on a primary key conflict.
	ErrProjectAlreadyExists = errors.New("project already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
