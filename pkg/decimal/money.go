package decimal

import (
	"github.com/shopspring/decimal"
)

// Money is an account amount carried at full decimal precision. Rounding to cents
// happens only when the amount is rendered.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// ApplyTaxRate returns the amount left after a flat tax rate is withheld
func (m Money) ApplyTaxRate(rate decimal.Decimal) Money {
	tax := m.Decimal.Mul(rate)
	return Money{m.Decimal.Sub(tax)}
}

// Grow compounds the amount by one period at the given rate: m * (1 + rate)
func (m Money) Grow(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Add(rate))}
}

// ClampZero returns the amount, or zero when it is negative
func (m Money) ClampZero() Money {
	return Max(m, Zero())
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the smaller of two amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds up any number of amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String renders the amount rounded to cents, e.g. "1234.50"
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as dollars, with the sign ahead of the symbol: "-$12.00"
func (m Money) Format() string {
	cents := m.Decimal.Round(2)
	if cents.IsNegative() {
		return "-$" + cents.Neg().StringFixed(2)
	}
	return "$" + cents.StringFixed(2)
}
