package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an attempt to register a new
	// account fails because the account key is already taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrRecordNotFound is returned when a query or update targets a sync
	// record (identified by account key and category) that does not exist.
	ErrRecordNotFound = errors.New("sync record was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client does not match the current
	// version stored in the database, meaning another installation has
	// modified the record since the client last synchronized.
	ErrVersionConflict = errors.New("sync record version conflict occurred")

	// ErrStateNotFound is returned by the agent's local repository when a
	// requested key (mirrored payload, device id, metadata record) has never
	// been written.
	ErrStateNotFound = errors.New("local state entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRow = errors.New("error scanning result row")
)
