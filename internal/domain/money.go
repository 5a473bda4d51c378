// Package domain contains the core entities and rules of the airline route simulation:
// money, the weighted airport graph, flight records and the flight ledger.
// Nothing in this package logs or performs I/O.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places used when money is divided or displayed.
const MoneyScale int32 = 2

// Money is an exact decimal amount. The zero value is a valid amount of zero.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d}
}

// MoneyFromInt creates an amount from an integer number of units.
func MoneyFromInt(v int64) Money {
	return Money{d: decimal.NewFromInt(v)}
}

// MoneyFromFloat creates an amount from a float using its shortest decimal representation.
func MoneyFromFloat(v float64) Money {
	return Money{d: decimal.NewFromFloat(v)}
}

// ParseMoney parses a decimal string such as "1000" or "15.25".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustParseMoney parses a decimal string and panics on failure.
// Intended for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

// Mul returns m * o.
func (m Money) Mul(o Money) Money {
	return Money{d: m.d.Mul(o.d)}
}

// MulInt returns m * n.
func (m Money) MulInt(n int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(n))}
}

// DivFloor divides m by divisor and rounds toward negative infinity at the given scale.
// The result is exact: no intermediate value is rounded.
func (m Money) DivFloor(divisor Money, scale int32) (Money, error) {
	if divisor.d.IsZero() {
		return Zero, fmt.Errorf("%w: division by zero", ErrArithmetic)
	}

	q, r := m.d.QuoRem(divisor.d, scale)
	if !r.IsZero() && r.Sign() != divisor.d.Sign() {
		q = q.Sub(decimal.New(1, -scale))
	}
	return Money{d: q}, nil
}

// DivFloorInt divides m by an integer count at the given scale, rounding toward negative infinity.
func (m Money) DivFloorInt(n int64, scale int32) (Money, error) {
	return m.DivFloor(MoneyFromInt(n), scale)
}

// Equal reports whether both amounts have the same value regardless of scale.
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// Cmp returns -1, 0 or 1 when m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.d.StringFixed(MoneyScale)
}

// MarshalJSON encodes the amount as a two-decimal JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted or bare decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.d.UnmarshalJSON(data)
}
