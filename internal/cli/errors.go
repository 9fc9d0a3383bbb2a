package cli

import (
	"errors"

	"github.com/mesh-intelligence/zoo/internal/document"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// classify picks the exit code for an error returned by the registry.
func classify(err error) error {
	switch {
	case errors.Is(err, document.ErrMalformed):
		return sysError(err)
	case errors.Is(err, types.ErrUnknownKind),
		errors.Is(err, types.ErrMissingAttribute),
		errors.Is(err, types.ErrInvalidAttribute),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidAge),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDataFileInvalid):
		return userError(err)
	default:
		return sysError(err)
	}
}
