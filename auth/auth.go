// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingIdentity = errors.New("author identity required")
	ErrInvalidUserID   = errors.New("invalid user id")
)

// NormalizeEmail trims the identity supplied by the sign-in provider.
// Emails are otherwise compared verbatim so that a record is only ever
// visible to the exact identity that created it.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingIdentity
	}
	return email, nil
}

// NewUserID returns a random UUIDv4 string for a user row
func NewUserID() string {
	return uuid.NewString()
}

// ValidUserID reports whether id looks like a provider or generated user id.
// Provider ids are opaque, so anything non-blank without whitespace passes.
func ValidUserID(id string) error {
	if id == "" || strings.ContainsAny(id, " \t\r\n") {
		return ErrInvalidUserID
	}
	return nil
}
