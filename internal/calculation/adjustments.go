package calculation

import (
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/Kai-23100/uganda-tax-full-mvp/pkg/money"
	"github.com/shopspring/decimal"
)

// AdjustmentLedger accumulates addbacks and allowable deductions keyed by
// item name. The name is the identity within each category: setting the same
// name twice replaces the earlier amount, so re-applying an adjustment is
// idempotent rather than double-counted.
type AdjustmentLedger struct {
	addbacks   map[string]decimal.Decimal
	allowables map[string]decimal.Decimal
}

// NewAdjustmentLedger returns an empty ledger.
func NewAdjustmentLedger() *AdjustmentLedger {
	return &AdjustmentLedger{
		addbacks:   make(map[string]decimal.Decimal),
		allowables: make(map[string]decimal.Decimal),
	}
}

// NewAdjustmentLedgerFromEntries builds a ledger from a slice of entries.
// Later entries with the same name and category win.
func NewAdjustmentLedgerFromEntries(entries []domain.AdjustmentEntry) *AdjustmentLedger {
	ledger := NewAdjustmentLedger()
	for _, e := range entries {
		ledger.Set(e)
	}
	return ledger
}

// Set records an adjustment, replacing any prior amount under the same name
// and category. Zero amounts still participate; they record the item with a
// no-op contribution.
func (l *AdjustmentLedger) Set(e domain.AdjustmentEntry) {
	switch e.Category {
	case domain.CategoryAddback:
		l.addbacks[e.Name] = e.Amount
	case domain.CategoryAllowable:
		l.allowables[e.Name] = e.Amount
	}
}

// TotalAddbacks sums all recorded addback amounts.
func (l *AdjustmentLedger) TotalAddbacks() decimal.Decimal {
	return sumValues(l.addbacks)
}

// TotalAllowables sums all recorded allowable deduction amounts.
func (l *AdjustmentLedger) TotalAllowables() decimal.Decimal {
	return sumValues(l.allowables)
}

// AdjustedProfit returns pbit plus total addbacks. The result is not
// floored; a loss position carries through to the chargeable income step.
func (l *AdjustmentLedger) AdjustedProfit(pbit decimal.Decimal) decimal.Decimal {
	return pbit.Add(l.TotalAddbacks())
}

// ChargeableIncome subtracts total allowables from adjusted profit and
// clamps the result at zero.
func (l *AdjustmentLedger) ChargeableIncome(adjustedProfit decimal.Decimal) decimal.Decimal {
	return money.FromDecimal(adjustedProfit.Sub(l.TotalAllowables())).FloorZero().Decimal
}

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}
