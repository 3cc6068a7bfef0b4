package types

import "errors"

// Store operation errors. Stores return these as typed sentinels so
// callers can branch with errors.Is; wrapped variants keep the cause
// text from the engine.
var (
	// ErrNotFound is returned when a referenced identifier or instance
	// id does not resolve to an element.
	ErrNotFound = errors.New("element not found")

	// ErrDuplicateIdentifier is returned by Create when the identifier
	// is already registered.
	ErrDuplicateIdentifier = errors.New("identifier already exists")

	// ErrDuplicateInstanceID is returned by Create when the instance id
	// is already registered.
	ErrDuplicateInstanceID = errors.New("instance id already exists")

	// ErrConstraintViolation is returned when a write references a
	// nonexistent element by raw instance id, i.e. the caller handed
	// the store a dangling reference rather than a name to resolve.
	ErrConstraintViolation = errors.New("reference to nonexistent element")

	// ErrStorageUnavailable wraps underlying file or connection
	// failures. The store performs no retries; callers may.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Argument validation errors.
var (
	ErrInvalidIdentifier = errors.New("identifier must not be empty")
	ErrInvalidInstanceID = errors.New("instance id must not be empty")
	ErrInvalidTag        = errors.New("tag must not be empty")
)

// Library lifecycle errors.
var (
	ErrDetached        = errors.New("library is detached")
	ErrAlreadyAttached = errors.New("library is already attached")
)
