package errs

import "errors"

// Error categories surfaced to callers. Use-case sentinels are marked with one of these.
var (
	ErrNotFound          = errors.New("not found")
	ErrRangeOutOfBounds  = errors.New("range out of bounds")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")

	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)
