package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services. Handlers translate them
// to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// ConflictError is a business-rule rejection: the request was well-formed but
// the current state of the fleet forbids it.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
