// Package crypto provides password hashing for user accounts.
// This is part of the Functional Core - all functions are pure with no I/O.
//
// Passwords are never persisted in plaintext. They are hashed with bcrypt
// before storage and compared against the stored hash.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	// ErrHashFailed is returned when bcrypt fails to produce a hash.
	ErrHashFailed = errors.New("failed to hash password")
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = bcrypt.DefaultCost

// =============================================================================
// Hashing
// =============================================================================

// HashPassword returns the bcrypt hash of password at DefaultCost.
//
// Example:
//
//	hash, err := HashPassword("correct horse")
//	if err != nil {
//	    // reject the request
//	}
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

// HashPasswordWithCost returns the bcrypt hash of password at the given cost.
// Tests use bcrypt.MinCost to keep runs fast.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailed, err)
	}
	return string(hash), nil
}

// PasswordMatches reports whether password hashes to hash.
// A malformed hash never matches.
func PasswordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashed reports whether s is a bcrypt hash.
func IsHashed(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
