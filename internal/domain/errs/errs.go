// Package errs holds the error kinds shared by the domain packages.
// Concrete errors wrap one of these so callers can classify them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidArgument marks input outside an operation's documented domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks an operation that cannot apply to the current state.
	ErrInvalidState = errors.New("invalid state")
)
