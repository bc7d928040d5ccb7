package models

import (
	"errors"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrCycleDetected   = errors.New("album hierarchy contains a cycle")
	ErrTooManyAttempts = errors.New("too many attempts")
)

// StoreError is a failure reported by a collaborator (database or auth).
// Its message is shown to the caller as is.
type StoreError struct {
	Op  string
	Msg string
	Err error
}

func NewStoreError(op, msg string, err error) *StoreError {
	return &StoreError{Op: op, Msg: msg, Err: err}
}

func (e *StoreError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "store error"
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err wraps a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
