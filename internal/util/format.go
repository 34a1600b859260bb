package util

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountTooPrecise = errors.New("amount has more than two decimal places")
)

// ParseAmount converts a decimal amount such as "1234.50" to hundredths of the
// currency unit, the unit every gateway amount is expressed in.
func ParseAmount(value string) (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidAmount, value)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w %q: must not be negative", ErrInvalidAmount, value)
	}
	if !amount.Equal(amount.Round(2)) {
		return 0, fmt.Errorf("%w: %q", ErrAmountTooPrecise, value)
	}

	hundredths := amount.Shift(2)
	if hundredths.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w %q: too large", ErrInvalidAmount, value)
	}

	return hundredths.IntPart(), nil
}

// FormatAmount formats hundredths of a currency unit for display.
// Example: 123456789 -> "1,234,567.89 CZK".
func FormatAmount(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	formatted := fmt.Sprintf("%s%s.%02d", sign, humanize.Comma(amount/100), amount%100)
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

func Int64Pointer(i int64) *int64 {
	return &i
}
