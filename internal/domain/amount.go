// Package domain defines the core value types of the settlement engine.
package domain

import "github.com/shopspring/decimal"

// amountPrecision is the number of fractional digits an Amount keeps.
const amountPrecision = 4

// Amount is a signed monetary value with four fractional digits.
// Constructors round finer input to that precision (ties away from zero),
// so two amounts are equal exactly when their rounded values are equal.
type Amount decimal.Decimal

// NewAmount rounds d to the fixed precision.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.Round(amountPrecision))
}

// ParseAmount parses a plain decimal string such as "1.5" or "-0.0001".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d), nil
}

// Add returns a+b at the fixed precision.
func (a Amount) Add(b Amount) Amount {
	return NewAmount(decimal.Decimal(a).Add(decimal.Decimal(b)))
}

// Sub returns a-b at the fixed precision.
func (a Amount) Sub(b Amount) Amount {
	return NewAmount(decimal.Decimal(a).Sub(decimal.Decimal(b)))
}

// Neg returns the additive inverse of a.
func (a Amount) Neg() Amount {
	return Amount(decimal.Decimal(a).Neg())
}

// IsZero reports whether a is exactly zero.
func (a Amount) IsZero() bool {
	return decimal.Decimal(a).IsZero()
}

// IsNegative reports whether a is below zero.
func (a Amount) IsNegative() bool {
	return decimal.Decimal(a).IsNegative()
}

// Equal reports numeric equality regardless of internal representation.
func (a Amount) Equal(b Amount) bool {
	return decimal.Decimal(a).Equal(decimal.Decimal(b))
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return decimal.Decimal(a).LessThan(decimal.Decimal(b))
}

// String renders a without trailing zeros.
func (a Amount) String() string {
	return decimal.Decimal(a).String()
}
