// Package store provides persistence for garden center entities.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateEmail is returned when a customer or user email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateSKU is returned when a product SKU is already taken.
	ErrDuplicateSKU = errors.New("sku already exists")

	// ErrForeignKey is returned when a foreign key constraint is violated.
	ErrForeignKey = errors.New("foreign key constraint violated")

	// ErrConnectionFailed is returned when database connection fails.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrMigrationFailed is returned when database migration fails.
	ErrMigrationFailed = errors.New("database migration failed")

	// ErrInvalidData is returned when a stored value cannot be decoded.
	ErrInvalidData = errors.New("invalid data format")

	// ErrTxFailed is returned when a transaction operation fails.
	ErrTxFailed = errors.New("transaction failed")
)

// StoreError wraps errors with additional context.
type StoreError struct {
	Op      string // Operation that failed (e.g., "CreateCustomer")
	Entity  string // Entity type (e.g., "customer", "order")
	ID      string // Entity ID if applicable
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %s", e.Op, e.Entity, e.ID, e.Message)
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, entity, id, message string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		Entity:  entity,
		ID:      id,
		Message: message,
		Err:     err,
	}
}

// idString renders an identifier for StoreError.ID. Zero means "not yet assigned".
func idString(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// writeError classifies a driver error from an INSERT or UPDATE.
func writeError(op, entity string, id int64, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: customers.email"),
		strings.Contains(msg, "UNIQUE constraint failed: users.email"):
		return NewStoreError(op, entity, idString(id), "email has already been taken", ErrDuplicateEmail)
	case strings.Contains(msg, "UNIQUE constraint failed: products.sku"):
		return NewStoreError(op, entity, idString(id), "sku has already been taken", ErrDuplicateSKU)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return NewStoreError(op, entity, idString(id), msg, ErrForeignKey)
	default:
		return NewStoreError(op, entity, idString(id), msg, err)
	}
}
