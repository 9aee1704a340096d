package calculation

import (
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/Kai-23100/uganda-tax-full-mvp/pkg/money"
	"github.com/shopspring/decimal"
)

// ComputationEngine orchestrates one tax determination: P&L aggregation,
// adjustment accumulation, gross tax, and the reduction chain. The engine
// holds no mutable computation state, so one engine may serve any number of
// independent computations.
type ComputationEngine struct {
	Logger Logger
}

// NewComputationEngine creates a new computation engine.
func NewComputationEngine() *ComputationEngine {
	return &ComputationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. A nil logger restores the no-op default.
func (ce *ComputationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Compute derives a ComputationResult from an input set in one pass.
//
// The reduction chain is fixed and every subtraction floors at zero:
// chargeable income, taxable income, net tax payable and net tax after
// provisional payments never go negative. Excess credits, rebates or
// provisional payments beyond what zeroes the tax are discarded; no refund
// balance is surfaced.
func (ce *ComputationEngine) Compute(input domain.ComputationInput) (domain.ComputationResult, error) {
	if err := ValidateModel(input.Model); err != nil {
		return domain.ComputationResult{}, err
	}

	pbit := input.Revenue.Add(input.OtherIncome).
		Sub(input.COGS.Add(input.OperatingExpenses).Add(input.OtherExpenses))

	ledger := NewAdjustmentLedgerFromEntries(input.Adjustments)
	totalAddbacks := ledger.TotalAddbacks()
	totalAllowables := ledger.TotalAllowables()
	adjustedProfit := ledger.AdjustedProfit(pbit)
	chargeableIncome := ledger.ChargeableIncome(adjustedProfit)
	ce.Logger.Debugf("pbit=%s addbacks=%s allowables=%s chargeable=%s",
		pbit, totalAddbacks, totalAllowables, chargeableIncome)

	taxableIncome := floorZero(chargeableIncome.Sub(input.CapitalAllowances).Sub(input.Exemptions))
	grossTax := GrossTax(taxableIncome, input.Model)
	netTaxPayable := floorZero(grossTax.Sub(input.CreditsWHT).Sub(input.CreditsForeign).Sub(input.Rebates))
	netTaxAfterProvisional := floorZero(netTaxPayable.Sub(input.ProvisionalTaxPaid))
	ce.Logger.Debugf("taxable=%s gross=%s net=%s afterProvisional=%s",
		taxableIncome, grossTax, netTaxPayable, netTaxAfterProvisional)

	return domain.ComputationResult{
		PBIT:                   pbit,
		TotalAddbacks:          totalAddbacks,
		AdjustedProfit:         adjustedProfit,
		TotalAllowables:        totalAllowables,
		ChargeableIncome:       chargeableIncome,
		TaxableIncome:          taxableIncome,
		GrossTax:               grossTax,
		NetTaxPayable:          netTaxPayable,
		NetTaxAfterProvisional: netTaxAfterProvisional,
	}, nil
}

// ComputeFromLedger classifies a raw dataset and adds the classified totals
// to the input's P&L buckets before computing. Buckets are additive, so a
// request may combine directly supplied totals with a raw ledger.
func (ce *ComputationEngine) ComputeFromLedger(ds *domain.Dataset, input domain.ComputationInput) (domain.ComputationResult, error) {
	return ce.Compute(ApplyTotals(input, ClassifyLedger(ds)))
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	return money.FromDecimal(d).FloorZero().Decimal
}
