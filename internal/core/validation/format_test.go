package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Email Tests
// =============================================================================

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"lh44@gmail.com", true},
		{"first.last-name@my-host.co.uk", true},
		{"tf@gmail.com", true},
		{"lh44gmail.com", false},
		{"lh44@gmail", false},
		{"lh44@gmail.c", false},
		{"lh44@gmail.info", false},
		{"@gmail.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

// =============================================================================
// State Tests
// =============================================================================

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("NY"))
	assert.True(t, IsValidState("CA"))
	assert.False(t, IsValidState("Hello"))
	assert.False(t, IsValidState("ny"), "matching is case-sensitive")
	assert.False(t, IsValidState("DC"), "only the 50 states are accepted")
	assert.False(t, IsValidState(""))
}

func TestIsValidState_AllFifty(t *testing.T) {
	assert.Len(t, usStates, 50)
	for state := range usStates {
		assert.True(t, IsValidState(state), state)
	}
}

// =============================================================================
// Zipcode Tests
// =============================================================================

func TestIsValidZipcode(t *testing.T) {
	tests := []struct {
		zipcode string
		want    bool
	}{
		{"23145-1111", true},
		{"23111", true},
		{"1234", false},
		{"123456", false},
		{"23145-111", false},
		{"2314a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.zipcode, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidZipcode(tt.zipcode))
		})
	}
}

// =============================================================================
// Money Tests
// =============================================================================

func TestIsValidMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"19.99", true},
		{"0.99", true},
		{"1234.56", true},
		{"19.9", false},
		{"49.2349", false},
		{"20", false},
		{"-19.99", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMoney(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestIsValidMoney_TrailingZeroIsTrimmedBeforeMatching(t *testing.T) {
	// 19.90 renders as "19.9", so it fails even though it is a valid amount.
	assert.False(t, IsValidMoney(decimal.RequireFromString("19.90")))
}

// =============================================================================
// Date Tests
// =============================================================================

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2020-10-17", true},
		{"2021-02-30", true},
		{"1999-12-31", true},
		{"202010-17", false},
		{"2020-13-01", false},
		{"2020-00-10", false},
		{"2020-10-32", false},
		{"2020-10-00", false},
		{"10/17/2020", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.date))
		})
	}
}

// =============================================================================
// Quantity & Password Tests
// =============================================================================

func TestIsPositiveQuantity(t *testing.T) {
	assert.True(t, IsPositiveQuantity(54))
	assert.True(t, IsPositiveQuantity(1))
	assert.False(t, IsPositiveQuantity(0))
	assert.False(t, IsPositiveQuantity(-7))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}
