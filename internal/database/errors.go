package database

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when the SurrealDB connection is unavailable.
var ErrNotConnected = errors.New("database not connected")

// StoreError carries the failing operation and card id alongside the cause.
// errors.Is sees through it, so domain.ErrNotFound stays checkable.
type StoreError struct {
	Op    string
	ID    string
	Query string
	Err   error
}

func (e *StoreError) Error() string {
	msg := e.Op
	if e.ID != "" {
		msg = fmt.Sprintf("%s %q", msg, e.ID)
	}
	if e.Query != "" {
		msg = fmt.Sprintf("%s (query: %s)", msg, e.Query)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, ID: id, Err: err}
}
