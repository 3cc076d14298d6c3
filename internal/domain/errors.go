package domain

import "errors"

// Error kinds shared across services and repositories. Callers wrap these
// with context via fmt.Errorf("...: %w", ...) and match with errors.Is.
var (
	// ErrInvalidID means the identifier does not parse under the store's
	// identity scheme.
	ErrInvalidID = errors.New("invalid id format")

	// ErrNotFound means a well-formed id or type matched no record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus means the status is outside the entity's
	// allowed-status set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrCapacityExceeded means passengers exceed the vehicle capacity.
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")

	// ErrValidation covers all request field validation failures.
	ErrValidation = errors.New("validation failed")
)
