package config

import (
	"fmt"
	"os"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/calculation"
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/Kai-23100/uganda-tax-full-mvp/pkg/period"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputFile is one computation request as supplied by the input collaborator:
// taxpayer identity, the computation input set, and optionally a raw ledger
// to classify into the P&L buckets.
type InputFile struct {
	Taxpayer    domain.Taxpayer         `yaml:"taxpayer" json:"taxpayer"`
	Computation domain.ComputationInput `yaml:"computation" json:"computation"`
	Ledger      *LedgerData             `yaml:"ledger,omitempty" json:"ledger,omitempty"`
}

// LedgerData is the serialized form of a column-oriented dataset.
type LedgerData struct {
	Columns []LedgerColumn `yaml:"columns" json:"columns"`
}

// LedgerColumn is one serialized dataset column.
type LedgerColumn struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values" json:"values"`
}

// Dataset converts the serialized ledger into a classifiable dataset.
func (ld *LedgerData) Dataset() *domain.Dataset {
	ds := domain.NewDataset()
	if ld == nil {
		return ds
	}
	for _, c := range ld.Columns {
		ds.AddColumn(c.Name, c.Values...)
	}
	return ds
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a computation request from a YAML file, applies model
// defaults, and validates before returning.
func (ip *InputParser) LoadFromFile(filename string) (*InputFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input InputFile
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&input)
	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}

// ApplyDefaults fills in the standard rate data where the file leaves the
// model unspecified: 30% company rate, the resident individual bracket table.
// A company_rate of 0 is indistinguishable from an absent one in the file
// format and is read as unset; a genuine zero-rate computation must pass a
// model to the engine directly.
func (ip *InputParser) ApplyDefaults(input *InputFile) {
	model := &input.Computation.Model
	if model.Type == "" {
		model.Type = domain.TaxpayerCompany
	}
	if model.Type == domain.TaxpayerCompany && model.CompanyRate.IsZero() {
		model.CompanyRate = domain.DefaultCompanyRate()
	}
	if model.Type == domain.TaxpayerIndividual && len(model.Brackets) == 0 {
		model.Brackets = domain.DefaultIndividualBrackets()
	}
}

// ValidateInput validates a loaded computation request.
func (ip *InputParser) ValidateInput(input *InputFile) error {
	if err := ip.validateTaxpayer(&input.Taxpayer); err != nil {
		return fmt.Errorf("taxpayer validation failed: %w", err)
	}
	if err := ip.validateComputation(&input.Computation); err != nil {
		return fmt.Errorf("computation validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateTaxpayer(t *domain.Taxpayer) error {
	if t.Name == "" {
		return fmt.Errorf("taxpayer name is required")
	}
	if t.Year < 2000 || t.Year > 2100 {
		return fmt.Errorf("year %d out of range", t.Year)
	}
	if t.Period == "" {
		return fmt.Errorf("period label is required")
	}
	if !period.Matches(t.Period, t.Year) {
		return fmt.Errorf("period %q does not match year %d", t.Period, t.Year)
	}
	return nil
}

func (ip *InputParser) validateComputation(c *domain.ComputationInput) error {
	amounts := map[string]decimal.Decimal{
		"revenue":              c.Revenue,
		"cogs":                 c.COGS,
		"operating_expenses":   c.OperatingExpenses,
		"other_income":         c.OtherIncome,
		"other_expenses":       c.OtherExpenses,
		"capital_allowances":   c.CapitalAllowances,
		"exemptions":           c.Exemptions,
		"credits_wht":          c.CreditsWHT,
		"credits_foreign":      c.CreditsForeign,
		"rebates":              c.Rebates,
		"provisional_tax_paid": c.ProvisionalTaxPaid,
	}
	for name, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	for i, entry := range c.Adjustments {
		if entry.Name == "" {
			return fmt.Errorf("adjustment %d: name is required", i)
		}
		if entry.Category != domain.CategoryAddback && entry.Category != domain.CategoryAllowable {
			return fmt.Errorf("adjustment %q: category must be %q or %q",
				entry.Name, domain.CategoryAddback, domain.CategoryAllowable)
		}
		if entry.Amount.IsNegative() {
			return fmt.Errorf("adjustment %q: amount cannot be negative", entry.Name)
		}
		// A catalogued name filed under the wrong category flips the sign of
		// its contribution; reject rather than compute a wrong figure.
		if entry.Category == domain.CategoryAddback && domain.IsStatutoryAllowable(entry.Name) {
			return fmt.Errorf("adjustment %q: catalogued as an allowable deduction, not an addback", entry.Name)
		}
		if entry.Category == domain.CategoryAllowable && domain.IsStatutoryAddback(entry.Name) {
			return fmt.Errorf("adjustment %q: catalogued as an addback, not an allowable deduction", entry.Name)
		}
	}

	// Bracket tables are client-supplied data; fail closed on structural
	// violations instead of misfeeding the calculator.
	if err := calculation.ValidateModel(c.Model); err != nil {
		return err
	}
	return nil
}

// CreateExampleInput creates an example computation request mirroring a
// small trading company's P&L ledger.
func (ip *InputParser) CreateExampleInput() *InputFile {
	return &InputFile{
		Taxpayer: domain.Taxpayer{
			TIN:    "1000012345",
			Name:   "Acme Ltd",
			Period: "FY2024/25",
			Year:   2024,
		},
		Computation: domain.ComputationInput{
			Adjustments: []domain.AdjustmentEntry{
				domain.Addback("Depreciation (Section 22(3)(b))", decimal.NewFromInt(12000000)),
				domain.Addback("Fines or Penalties (Section 22(3)(g))", decimal.NewFromInt(500000)),
				domain.Allowable("Wear & Tear (Section 27(1))", decimal.NewFromInt(9000000)),
			},
			CapitalAllowances:  decimal.NewFromInt(5000000),
			Exemptions:         decimal.Zero,
			CreditsWHT:         decimal.NewFromInt(2000000),
			CreditsForeign:     decimal.Zero,
			Rebates:            decimal.Zero,
			ProvisionalTaxPaid: decimal.NewFromInt(4000000),
			Model: domain.TaxModel{
				Type:        domain.TaxpayerCompany,
				CompanyRate: domain.DefaultCompanyRate(),
			},
		},
		Ledger: &LedgerData{
			Columns: []LedgerColumn{
				{Name: "Account", Values: []string{
					"Income:Sales",
					"Income:Other Income",
					"COGS",
					"Expenses:Rent",
					"Expenses:Salaries",
				}},
				{Name: "Amount", Values: []string{
					"250000000",
					"10000000",
					"90000000",
					"30000000",
					"60000000",
				}},
			},
		},
	}
}
