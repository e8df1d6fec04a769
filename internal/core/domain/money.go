package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RoundingMode selects how digits are dropped when an amount loses precision.
type RoundingMode int

const (
	// RoundTruncate drops digits toward zero.
	RoundTruncate RoundingMode = iota
	// RoundHalfEven rounds to the nearest value, ties to even (banker's rounding).
	RoundHalfEven
)

// String returns the configuration name of the mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half_even"
	default:
		return "truncate"
	}
}

// ParseRoundingMode maps a configuration value to a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate":
		return RoundTruncate, nil
	case "half_even", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundTruncate, fmt.Errorf("%w: unknown rounding mode %q", apperrors.ErrValidation, s)
	}
}

// ParseAmount parses an integer-valued numeric string from the Store API.
// Amounts are minor-unit integers, so a decimal point or exponent is rejected.
// An empty string is treated as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	digits := s
	if digits[0] == '-' || digits[0] == '+' {
		digits = digits[1:]
	}
	if digits == "" {
		return decimal.Zero, fmt.Errorf("%w: %q is not an integer amount", apperrors.ErrInvalidAmount, s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return decimal.Zero, fmt.Errorf("%w: %q is not an integer amount", apperrors.ErrInvalidAmount, s)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrInvalidAmount, err)
	}
	return d, nil
}

// FixedPointAmount is an integer amount paired with its precision, representing
// amount / 10^precision exactly. Values are immutable.
type FixedPointAmount struct {
	amount    decimal.Decimal // always integral
	precision int32
}

// NewFixedPointAmount builds an amount from minor units at the given precision.
func NewFixedPointAmount(amount int64, precision int32) FixedPointAmount {
	return FixedPointAmount{amount: decimal.NewFromInt(amount), precision: clampPrecision(precision)}
}

// ParseFixedPointAmount parses a Store API integer string at the given precision.
func ParseFixedPointAmount(s string, precision int32) (FixedPointAmount, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return FixedPointAmount{}, err
	}
	return FixedPointAmount{amount: d, precision: clampPrecision(precision)}, nil
}

func clampPrecision(p int32) int32 {
	if p < 0 {
		return 0
	}
	return p
}

// Amount returns the integer amount in units of 10^-precision.
func (a FixedPointAmount) Amount() decimal.Decimal {
	return a.amount
}

// Int64 returns the integer amount. Amounts beyond int64 are not produced by the Store API.
func (a FixedPointAmount) Int64() int64 {
	return a.amount.IntPart()
}

// Precision returns the number of minor-unit digits.
func (a FixedPointAmount) Precision() int32 {
	return a.precision
}

// Decimal returns the value in major units, e.g. 1050 at precision 2 is 10.50.
func (a FixedPointAmount) Decimal() decimal.Decimal {
	return a.amount.Shift(-a.precision)
}

// Rescale converts the amount to the target precision, truncating toward zero
// when precision is reduced.
func (a FixedPointAmount) Rescale(target int32) FixedPointAmount {
	return a.RescaleWith(target, RoundTruncate)
}

// RescaleWith converts the amount to the target precision using mode when digits are dropped.
func (a FixedPointAmount) RescaleWith(target int32, mode RoundingMode) FixedPointAmount {
	target = clampPrecision(target)
	if target == a.precision {
		return a
	}
	shifted := a.amount.Shift(target - a.precision)
	if target < a.precision {
		switch mode {
		case RoundHalfEven:
			shifted = shifted.RoundBank(0)
		default:
			shifted = shifted.Truncate(0)
		}
	}
	return FixedPointAmount{amount: shifted, precision: target}
}

// Add returns a + b. Operands of differing precision are combined at the lower one.
func (a FixedPointAmount) Add(b FixedPointAmount) FixedPointAmount {
	x, y := common(a, b)
	return FixedPointAmount{amount: x.amount.Add(y.amount), precision: x.precision}
}

// Subtract returns a - b. Operands of differing precision are combined at the lower one.
func (a FixedPointAmount) Subtract(b FixedPointAmount) FixedPointAmount {
	x, y := common(a, b)
	return FixedPointAmount{amount: x.amount.Sub(y.amount), precision: x.precision}
}

// MultiplyByQuantity returns a * quantity. Quantity must be at least 1.
func (a FixedPointAmount) MultiplyByQuantity(quantity int64) (FixedPointAmount, error) {
	if quantity < 1 {
		return FixedPointAmount{}, fmt.Errorf("%w: quantity must be at least 1, got %d", apperrors.ErrInvalidQuantity, quantity)
	}
	return FixedPointAmount{amount: a.amount.Mul(decimal.NewFromInt(quantity)), precision: a.precision}, nil
}

// Negate returns -a.
func (a FixedPointAmount) Negate() FixedPointAmount {
	return FixedPointAmount{amount: a.amount.Neg(), precision: a.precision}
}

// IsZero reports whether the amount is zero.
func (a FixedPointAmount) IsZero() bool {
	return a.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (a FixedPointAmount) IsPositive() bool {
	return a.amount.IsPositive()
}

// Equal reports whether both amounts carry the same integer at the same precision.
func (a FixedPointAmount) Equal(b FixedPointAmount) bool {
	return a.precision == b.precision && a.amount.Equal(b.amount)
}

// ToDisplayMinorUnit rescales to the currency minor unit and returns the integer handed to formatting.
func (a FixedPointAmount) ToDisplayMinorUnit(c Currency) int64 {
	return a.Rescale(c.MinorUnit).Int64()
}

// ToDisplayMinorUnitWith is ToDisplayMinorUnit with an explicit downscale mode.
func (a FixedPointAmount) ToDisplayMinorUnitWith(c Currency, mode RoundingMode) int64 {
	return a.RescaleWith(c.MinorUnit, mode).Int64()
}

// String renders the amount as "amount@precision", for logs and test failures.
func (a FixedPointAmount) String() string {
	return fmt.Sprintf("%s@%d", a.amount.String(), a.precision)
}

func common(a, b FixedPointAmount) (FixedPointAmount, FixedPointAmount) {
	switch {
	case a.precision == b.precision:
		return a, b
	case a.precision < b.precision:
		return a, b.Rescale(a.precision)
	default:
		return a.Rescale(b.precision), b
	}
}
