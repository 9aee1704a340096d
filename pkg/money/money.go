package money

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary quantity in Uganda Shillings with proper
// financial precision. The embedded decimal exposes the usual arithmetic
// and predicates; the methods here are the ones whose results must stay
// Amounts.
type Amount struct {
	decimal.Decimal
}

// FromDecimal creates a new Amount from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// Round rounds the amount to two decimal places
func (a Amount) Round() Amount {
	return Amount{a.Decimal.Round(2)}
}

// Mul multiplies by a decimal factor
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{a.Decimal.Mul(factor)}
}

// FloorZero clamps a negative amount to zero. Reduction steps never surface
// negative balances.
func (a Amount) FloorZero() Amount {
	if a.Decimal.IsNegative() {
		return Zero()
	}
	return a
}

// Zero returns a zero Amount
func Zero() Amount {
	return Amount{decimal.Zero}
}

// String returns the string representation fixed to two decimal places
func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

// Format formats the amount with the UGX currency prefix
func (a Amount) Format() string {
	return "UGX " + a.String()
}
