package domain

import "github.com/shopspring/decimal"

// =============================================================================
// Optional
// =============================================================================

// Optional is a value that may be absent. Filter criteria use it so that
// "not supplied" is explicit rather than encoded as a zero value.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// =============================================================================
// Query Sentinels
// =============================================================================
//
// The HTTP API has always treated an empty string or a non-positive number as
// "criterion not supplied". These constructors keep that contract in one
// place; a caller that needs to match a literal zero must use Some directly.

// Text returns an Optional that is absent for the empty string.
func Text(s string) Optional[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// Positive returns an Optional that is absent unless n > 0.
func Positive[T ~int | ~int32 | ~int64](n T) Optional[T] {
	if n <= 0 {
		return None[T]()
	}
	return Some(n)
}

// PositiveAmount returns an Optional that is absent unless d > 0.
func PositiveAmount(d decimal.Decimal) Optional[decimal.Decimal] {
	if !d.IsPositive() {
		return None[decimal.Decimal]()
	}
	return Some(d)
}
