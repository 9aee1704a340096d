package calculation

import (
	"fmt"
	"sort"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/Kai-23100/uganda-tax-full-mvp/pkg/money"
	"github.com/shopspring/decimal"
)

// ConfigurationError reports a tax model that fails its structural contract
// (unordered thresholds, rates outside [0,1], or a fixed amount that is not
// the cumulative tax at its threshold). Models are validated before they
// reach a calculator; a bad table fed past validation computes a wrong
// result rather than crashing, so callers must fail closed here.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid tax model: " + e.Reason
}

// FlatRateCalculator computes company income tax at a single rate.
type FlatRateCalculator struct {
	Rate decimal.Decimal
}

// NewFlatRateCalculator creates a flat-rate calculator. A zero rate is valid.
func NewFlatRateCalculator(rate decimal.Decimal) *FlatRateCalculator {
	return &FlatRateCalculator{Rate: rate}
}

// GrossTax computes round(taxableIncome * rate, 2), zero for non-positive income.
func (c *FlatRateCalculator) GrossTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return money.FromDecimal(taxableIncome).Mul(c.Rate).Round().Decimal
}

// ProgressiveCalculator computes individual income tax from an ordered
// bracket table. Each tier's Fixed amount is the cumulative tax at exactly
// its threshold, so the tax for income inside a tier is
// fixed + rate * (income - threshold).
type ProgressiveCalculator struct {
	tiers []domain.BracketTier
}

// NewProgressiveCalculator creates a progressive calculator. The supplied
// table is copied and sorted ascending by threshold; callers need not
// pre-sort externally configured tables.
func NewProgressiveCalculator(tiers []domain.BracketTier) *ProgressiveCalculator {
	sorted := append([]domain.BracketTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold.LessThan(sorted[j].Threshold)
	})
	return &ProgressiveCalculator{tiers: sorted}
}

// GrossTax walks the sorted tiers and retains the candidate from the highest
// tier the income still exceeds. Income exactly on a threshold belongs to the
// lower tier (strict > comparison); the top tier has no upper bound. The
// result is floored at zero and rounded to 2 decimal places.
func (c *ProgressiveCalculator) GrossTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	for i, tier := range c.tiers {
		if !taxableIncome.GreaterThan(tier.Threshold) {
			// Tiers ascend, so no later tier applies either.
			break
		}
		upper := taxableIncome
		if i+1 < len(c.tiers) {
			upper = decimal.Min(taxableIncome, c.tiers[i+1].Threshold)
		}
		slice := upper.Sub(tier.Threshold)
		if slice.IsNegative() {
			slice = decimal.Zero
		}
		tax = tier.Fixed.Add(slice.Mul(tier.Rate))
	}

	return money.FromDecimal(tax).FloorZero().Round().Decimal
}

// GrossTax dispatches to the calculator selected by the model's taxpayer type.
func GrossTax(taxableIncome decimal.Decimal, model domain.TaxModel) decimal.Decimal {
	if model.Type == domain.TaxpayerIndividual {
		return NewProgressiveCalculator(model.Brackets).GrossTax(taxableIncome)
	}
	return NewFlatRateCalculator(model.CompanyRate).GrossTax(taxableIncome)
}

// ValidateModel checks a tax model's structural contract and fails closed
// with a ConfigurationError before the model is used in a computation.
func ValidateModel(model domain.TaxModel) error {
	switch model.Type {
	case domain.TaxpayerCompany:
		return validateRate(model.CompanyRate)
	case domain.TaxpayerIndividual:
		return ValidateTiers(model.Brackets)
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown taxpayer type %q", model.Type)}
	}
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return &ConfigurationError{Reason: fmt.Sprintf("company rate %s outside [0,1]", rate)}
	}
	return nil
}

// ValidateTiers checks a bracket table: non-empty, non-negative thresholds
// and fixed amounts, rates within [0,1], strictly ascending thresholds, and
// the cumulative fixed-base contract
// fixed[i] = fixed[i-1] + rate[i-1]*(threshold[i]-threshold[i-1]).
// The table may arrive unsorted; it is sorted before checking.
func ValidateTiers(tiers []domain.BracketTier) error {
	if len(tiers) == 0 {
		return &ConfigurationError{Reason: "bracket table is empty"}
	}
	sorted := append([]domain.BracketTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold.LessThan(sorted[j].Threshold)
	})

	one := decimal.NewFromInt(1)
	for i, tier := range sorted {
		if tier.Threshold.IsNegative() {
			return &ConfigurationError{Reason: fmt.Sprintf("tier %d: negative threshold %s", i, tier.Threshold)}
		}
		if tier.Rate.IsNegative() || tier.Rate.GreaterThan(one) {
			return &ConfigurationError{Reason: fmt.Sprintf("tier %d: rate %s outside [0,1]", i, tier.Rate)}
		}
		if tier.Fixed.IsNegative() {
			return &ConfigurationError{Reason: fmt.Sprintf("tier %d: negative fixed amount %s", i, tier.Fixed)}
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if !tier.Threshold.GreaterThan(prev.Threshold) {
			return &ConfigurationError{Reason: fmt.Sprintf("tier %d: threshold %s does not ascend past %s", i, tier.Threshold, prev.Threshold)}
		}
		want := prev.Fixed.Add(prev.Rate.Mul(tier.Threshold.Sub(prev.Threshold)))
		if !tier.Fixed.Equal(want) {
			return &ConfigurationError{Reason: fmt.Sprintf(
				"tier %d: fixed amount %s is not cumulative (expected %s at threshold %s)",
				i, tier.Fixed, want, tier.Threshold)}
		}
	}
	return nil
}
