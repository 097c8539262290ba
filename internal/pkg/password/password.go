// Package password hashes and verifies staff credentials with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bakehouse/internal/pkg/errs"
)

var (
	ErrEmptyPassword    = errs.New("password must not be empty")
	ErrPasswordMismatch = errs.New("password does not match")
)

// HashPassword produces a bcrypt hash at the library's default cost. Raising
// the cost later invalidates nothing; existing hashes keep their recorded
// cost and still verify.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// ComparePassword reports a mismatch as ErrPasswordMismatch; any other
// non-nil return means the stored hash itself is unusable.
func ComparePassword(hashed, raw string) error {
	if hashed == "" || raw == "" {
		return ErrEmptyPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return errs.Wrap(err, "failed to compare password")
	}
	return nil
}
