package domain

import (
	"github.com/shopspring/decimal"
)

// TaxpayerType selects the applicable tax model for a computation.
type TaxpayerType string

const (
	TaxpayerCompany    TaxpayerType = "company"
	TaxpayerIndividual TaxpayerType = "individual"
)

// Valid reports whether the taxpayer type is one of the supported kinds.
func (t TaxpayerType) Valid() bool {
	return t == TaxpayerCompany || t == TaxpayerIndividual
}

// AdjustmentCategory distinguishes addbacks (disallowables) from allowable
// deductions in the adjustment ledger.
type AdjustmentCategory string

const (
	CategoryAddback   AdjustmentCategory = "addback"
	CategoryAllowable AdjustmentCategory = "allowable"
)

// AdjustmentEntry is one named statutory adjustment line item. Name carries
// the ITA Cap 338 section reference and is the uniqueness key within a
// category: assigning the same name twice replaces the earlier amount.
type AdjustmentEntry struct {
	Name     string             `yaml:"name" json:"name"`
	Amount   decimal.Decimal    `yaml:"amount" json:"amount"`
	Category AdjustmentCategory `yaml:"category" json:"category"`
}

// Addback creates an addback (disallowable) entry.
func Addback(name string, amount decimal.Decimal) AdjustmentEntry {
	return AdjustmentEntry{Name: name, Amount: amount, Category: CategoryAddback}
}

// Allowable creates an allowable deduction entry.
func Allowable(name string, amount decimal.Decimal) AdjustmentEntry {
	return AdjustmentEntry{Name: name, Amount: amount, Category: CategoryAllowable}
}

// BracketTier is one row of a progressive rate table. Fixed is the cumulative
// tax computed at exactly Threshold over all lower tiers, not a marginal
// amount per tier. Supplying marginal amounts yields a wrong (but valid)
// result, so tables are structurally validated before use.
type BracketTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Fixed     decimal.Decimal `yaml:"fixed" json:"fixed"`
}

// TaxModel carries either the flat company rate or the individual bracket
// table, depending on Type.
type TaxModel struct {
	Type        TaxpayerType    `yaml:"type" json:"type"`
	CompanyRate decimal.Decimal `yaml:"company_rate,omitempty" json:"company_rate,omitempty"`
	Brackets    []BracketTier   `yaml:"brackets,omitempty" json:"brackets,omitempty"`
}

// DefaultCompanyRate is the standard corporate income tax rate (30%).
func DefaultCompanyRate() decimal.Decimal {
	return decimal.NewFromFloat(0.30)
}

// DefaultIndividualBrackets returns the resident individual rate schedule
// (annual amounts, UGX). Overridable via configuration for other years.
func DefaultIndividualBrackets() []BracketTier {
	return []BracketTier{
		{Threshold: decimal.Zero, Rate: decimal.Zero, Fixed: decimal.Zero},
		{Threshold: decimal.NewFromInt(2820000), Rate: decimal.NewFromFloat(0.10), Fixed: decimal.Zero},
		{Threshold: decimal.NewFromInt(4020000), Rate: decimal.NewFromFloat(0.20), Fixed: decimal.NewFromInt(120000)},
		{Threshold: decimal.NewFromInt(4920000), Rate: decimal.NewFromFloat(0.30), Fixed: decimal.NewFromInt(360000)},
		{Threshold: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.40), Fixed: decimal.NewFromInt(1830000)},
	}
}

// ComputationInput is the complete, immutable input set for one tax
// determination. It is constructed fresh per computation request; no
// component reads or writes shared state.
type ComputationInput struct {
	Revenue           decimal.Decimal `yaml:"revenue" json:"revenue"`
	COGS              decimal.Decimal `yaml:"cogs" json:"cogs"`
	OperatingExpenses decimal.Decimal `yaml:"operating_expenses" json:"operating_expenses"`
	OtherIncome       decimal.Decimal `yaml:"other_income" json:"other_income"`
	OtherExpenses     decimal.Decimal `yaml:"other_expenses" json:"other_expenses"`

	Adjustments []AdjustmentEntry `yaml:"adjustments,omitempty" json:"adjustments,omitempty"`

	CapitalAllowances  decimal.Decimal `yaml:"capital_allowances" json:"capital_allowances"`
	Exemptions         decimal.Decimal `yaml:"exemptions" json:"exemptions"`
	CreditsWHT         decimal.Decimal `yaml:"credits_wht" json:"credits_wht"`
	CreditsForeign     decimal.Decimal `yaml:"credits_foreign" json:"credits_foreign"`
	Rebates            decimal.Decimal `yaml:"rebates" json:"rebates"`
	ProvisionalTaxPaid decimal.Decimal `yaml:"provisional_tax_paid" json:"provisional_tax_paid"`

	Model TaxModel `yaml:"model" json:"model"`
}

// ComputationResult is the derived snapshot of one computation. It is
// computed in a single pass and never mutated after creation. PBIT may be
// negative; every value from ChargeableIncome onward is floored at zero.
type ComputationResult struct {
	PBIT                   decimal.Decimal `yaml:"pbit" json:"pbit"`
	TotalAddbacks          decimal.Decimal `yaml:"total_addbacks" json:"total_addbacks"`
	AdjustedProfit         decimal.Decimal `yaml:"adjusted_profit" json:"adjusted_profit"`
	TotalAllowables        decimal.Decimal `yaml:"total_allowables" json:"total_allowables"`
	ChargeableIncome       decimal.Decimal `yaml:"chargeable_income" json:"chargeable_income"`
	TaxableIncome          decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	GrossTax               decimal.Decimal `yaml:"gross_tax" json:"gross_tax"`
	NetTaxPayable          decimal.Decimal `yaml:"net_tax_payable" json:"net_tax_payable"`
	NetTaxAfterProvisional decimal.Decimal `yaml:"net_tax_after_provisional" json:"net_tax_after_provisional"`
}

// Taxpayer is the identity metadata attached to a saved or exported
// computation.
type Taxpayer struct {
	TIN    string `yaml:"tin" json:"tin"`
	Name   string `yaml:"name" json:"name"`
	Period string `yaml:"period" json:"period"`
	Year   int    `yaml:"year" json:"year"`
}

// Assessment couples a taxpayer with its input and computed result. This is
// the value handed to formatters and to the return builder.
type Assessment struct {
	Taxpayer Taxpayer          `yaml:"taxpayer" json:"taxpayer"`
	Input    ComputationInput  `yaml:"input" json:"input"`
	Result   ComputationResult `yaml:"result" json:"result"`
}
