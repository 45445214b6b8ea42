package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrUnitUnavailable    = errors.New("unit is not available")
	ErrLimitExceeded      = errors.New("subscription limit exceeded")
)
