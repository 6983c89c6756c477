package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNameTaken is returned when an insert or update would place two
	// projects with the same name under the same user. Enforced by the
	// (userId, name) unique index, not by a check-then-insert race.
	ErrProjectNameTaken = errors.New("project with this name already exists")

	// ErrProjectAlreadyImported is returned when a GitHub import targets a
	// repository path the user has already imported. Enforced by the
	// (userId, githubPath) unique index.
	ErrProjectAlreadyImported = errors.New("repository already exists in your projects")

	// ErrProjectNotFound is returned when a project lookup scoped to
	// (id, userId) matches nothing. A project owned by another user is
	// indistinguishable from one that does not exist.
	ErrProjectNotFound = errors.New("project not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against one of the
	// datastores fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a result row
	// into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
