package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOptional_SomeAndNone(t *testing.T) {
	v, ok := Some("Oxnard").Get()
	assert.True(t, ok)
	assert.Equal(t, "Oxnard", v)

	v, ok = None[string]().Get()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestOptional_SomeZeroIsSet(t *testing.T) {
	assert.True(t, Some(0).IsSet(), "Some keeps literal zero")
}

func TestText(t *testing.T) {
	assert.False(t, Text("").IsSet())
	assert.True(t, Text(" ").IsSet())
	assert.True(t, Text("CA").IsSet())
}

func TestPositive(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want bool
	}{
		{name: "positive", in: 54, want: true},
		{name: "zero means absent", in: 0, want: false},
		{name: "negative means absent", in: -7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positive(tt.in).IsSet())
		})
	}
}

func TestPositiveAmount(t *testing.T) {
	assert.True(t, PositiveAmount(decimal.RequireFromString("19.99")).IsSet())
	assert.False(t, PositiveAmount(decimal.Zero).IsSet())
	assert.False(t, PositiveAmount(decimal.RequireFromString("-1.00")).IsSet())
}

func TestEntityID(t *testing.T) {
	entities := []Entity{
		Customer{ID: 1},
		Product{ID: 2},
		Order{ID: 3},
		User{ID: 4},
	}
	for i, e := range entities {
		assert.Equal(t, int64(i+1), e.EntityID())
	}
}
