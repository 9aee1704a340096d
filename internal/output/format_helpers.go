package output

import (
	"github.com/Kai-23100/uganda-tax-full-mvp/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as UGX currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FromDecimal(amount).Format() }

// FormatRate formats a fractional rate as a percentage with 2 decimals.
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
