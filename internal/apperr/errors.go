package apperr

import "errors"

// ErrValidation is returned when the input fails domain validation.
var ErrValidation = errors.New("validation failed")

// ErrInvalidTransition indicates a lifecycle operation attempted from a status that does not permit it.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates a missing, expired or revoked session.
var ErrUnauthorized = errors.New("unauthorized")
