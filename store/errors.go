// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/consideration-vault/auth"
)

var (
	// ErrUnauthenticated is returned when no author identity was supplied.
	ErrUnauthenticated = auth.ErrMissingIdentity

	// ErrNotFound covers both "no such record" and "record owned by someone else".
	ErrNotFound = errors.New("consideration not found")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PersistenceError wraps a database failure. The operation was rolled back
// and can be retried as a whole.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
