// Package money converts between display amounts and stored cents and formats
// amounts the way the dashboard shows them (en-US, USD).
package money

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ErrAmountOutOfRange is returned when an amount has no int64 cents representation.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ToMinorUnits converts a display amount (dollars) into cents, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	cents := amount.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrAmountOutOfRange
	}
	return cents.IntPart(), nil
}

// FromMinorUnits converts stored cents into a display amount.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCurrency renders cents as a USD amount, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	amount := FromMinorUnits(cents)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// FormatDateToLocal renders a calendar date as "Jan 2, 2006".
func FormatDateToLocal(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
