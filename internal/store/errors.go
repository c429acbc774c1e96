package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned by [Preferences.Get] when no value is
	// stored under the requested key.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrRecordNotFound is returned when a query or delete targets an
	// identity record that does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStoreClosed is returned by every record store operation after Close.
	ErrStoreClosed = errors.New("record store is closed")

	// ErrInvalidSnapshot is returned by ImportPlaintext when the file is not
	// a record store image.
	ErrInvalidSnapshot = errors.New("file is not a record store snapshot")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrOpeningDatabase is returned when a database cannot be opened or
	// does not answer a ping. A wrong SQLCipher key surfaces here.
	ErrOpeningDatabase = errors.New("error opening database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
