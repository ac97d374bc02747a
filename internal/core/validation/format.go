package validation

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// =============================================================================
// Format Predicates
// =============================================================================

var (
	emailPattern   = regexp.MustCompile(`^([\w.\-]+)@([\w\-]+)((\.(\w){2,3})+)$`)
	zipcodePattern = regexp.MustCompile(`^[0-9]{5}(?:-[0-9]{4})?$`)
	moneyPattern   = regexp.MustCompile(`^[0-9]*\.[0-9]{2}$`)
	datePattern    = regexp.MustCompile(`^\d{4}-((0[1-9])|(1[012]))-((0[1-9]|[12]\d)|3[01])$`)
)

// usStates is the set of the 50 US state abbreviations. Matching is case-sensitive.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

// MinPasswordLength is the shortest password accepted for a user.
const MinPasswordLength = 8

// IsValidEmail reports whether email has a local part, an "@", a host and
// one or more 2-3 character domain labels.
//
// Example:
//
//	IsValidEmail("lh44@gmail.com") // true
//	IsValidEmail("lh44gmail.com")  // false
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidState reports whether state is one of the 50 US state abbreviations.
func IsValidState(state string) bool {
	_, ok := usStates[state]
	return ok
}

// IsValidZipcode reports whether zipcode is 5 digits, optionally followed by
// a hyphen and 4 digits.
func IsValidZipcode(zipcode string) bool {
	return zipcodePattern.MatchString(zipcode)
}

// IsValidMoney reports whether the rendered amount has exactly two fractional
// digits.
//
// The check runs on amount.String(), which drops trailing zeros, so an amount
// numerically equal to 19.90 renders as "19.9" and is rejected.
//
// Example:
//
//	IsValidMoney(decimal.RequireFromString("19.99"))   // true
//	IsValidMoney(decimal.RequireFromString("19.9"))    // false
//	IsValidMoney(decimal.RequireFromString("49.2349")) // false
func IsValidMoney(amount decimal.Decimal) bool {
	return moneyPattern.MatchString(amount.String())
}

// IsValidDate reports whether date has the form YYYY-MM-DD with month 01-12
// and day 01-31. Calendar validity is not checked, so 2021-02-30 passes.
func IsValidDate(date string) bool {
	return datePattern.MatchString(date)
}

// IsPositiveQuantity reports whether quantity is strictly greater than zero.
func IsPositiveQuantity(quantity int) bool {
	return quantity > 0
}

// IsValidPassword reports whether password is at least MinPasswordLength bytes.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}
