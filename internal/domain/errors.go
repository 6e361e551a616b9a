package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common card and team failures.
var (
	ErrNotFound      = errors.New("requested resource not found")
	ErrInvalidInput  = errors.New("invalid input data")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrSaveFailed    = errors.New("failed to save card")
)
