package money

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{1999, "$19.99"},
		{0, "$0.00"},
		{5, "$0.05"},
		{100000, "$1,000.00"},
		{123456789, "$1,234,567.89"},
		{-500, "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.cents))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount   string
		expected int64
	}{
		{"19.99", 1999},
		{"0.1", 10},
		{"250", 25000},
		{"0.005", 1},
		{"12.344", 1234},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			cents, err := ToMinorUnits(decimal.RequireFromString(tt.amount))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestToMinorUnits_OutOfRange(t *testing.T) {
	for _, amount := range []string{"100000000000000000", "1e30", "-1e30"} {
		t.Run(amount, func(t *testing.T) {
			cents, err := ToMinorUnits(decimal.RequireFromString(amount))
			assert.ErrorIs(t, err, ErrAmountOutOfRange)
			assert.Zero(t, cents)
		})
	}

	cents, err := ToMinorUnits(decimal.RequireFromString("92233720368547758.07"))
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), cents)
}

func TestFromMinorUnits(t *testing.T) {
	assert.True(t, decimal.RequireFromString("19.99").Equal(FromMinorUnits(1999)))
	assert.Equal(t, "157.95", FromMinorUnits(15795).StringFixed(2))
}

func TestFormatDateToLocal(t *testing.T) {
	d := time.Date(2022, time.December, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Dec 6, 2022", FormatDateToLocal(d))
}
