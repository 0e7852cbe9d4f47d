package usecase

import crerr "github.com/cockroachdb/errors"

// Callers wrap these with fmt.Errorf("%w: ...") and the HTTP layer maps
// each one to a status code.
var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	ErrUnauthorized = crerr.New("unauthorized")
	// ErrDependencyUnavailable means a collaborator is unconfigured or down.
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
