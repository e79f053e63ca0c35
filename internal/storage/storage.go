package storage

import "errors"

var (
	// ErrNotFound is returned by Lookup when no redirect exists for the ID.
	ErrNotFound = errors.New("redirect not found")

	// ErrAlreadyExists is returned by Store when the ID is already taken.
	// Store never overwrites an existing redirect.
	ErrAlreadyExists = errors.New("redirect ID already exists")
)

// InternalError reports a failure of the storage mechanism itself, as
// opposed to errors caused by caller input.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return "storage failure: " + e.Detail
}

// Storage maps redirect IDs to target URLs for the lifetime of the process.
type Storage interface {
	// Lookup returns the target URL for an exact ID match.
	Lookup(id string) (string, error)

	// Store creates a new redirect. IDs are unique; creation of a
	// duplicate fails rather than updating the existing record.
	Store(id, targetURL, owner string) error
}
