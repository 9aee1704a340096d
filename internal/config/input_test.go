package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadFromFile tests a complete request loading end to end
func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	path := writeInputFile(t, `
taxpayer:
  tin: "1000012345"
  name: Acme Ltd
  period: FY2024/25
  year: 2024
computation:
  revenue: 250000000
  cogs: 90000000
  operating_expenses: 60000000
  adjustments:
    - name: Depreciation
      amount: 12000000
      category: addback
    - name: Wear & Tear
      amount: 9000000
      category: allowable
  capital_allowances: 5000000
  model:
    type: company
    company_rate: 0.30
ledger:
  columns:
    - name: Account
      values: ["Sales"]
    - name: Amount
      values: ["1000000"]
`)

	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd", input.Taxpayer.Name)
	assert.True(t, input.Computation.Revenue.Equal(decimal.NewFromInt(250000000)))
	assert.Len(t, input.Computation.Adjustments, 2)
	assert.Equal(t, domain.CategoryAddback, input.Computation.Adjustments[0].Category)

	require.NotNil(t, input.Ledger)
	ds := input.Ledger.Dataset()
	col, ok := ds.Column("account")
	require.True(t, ok)
	assert.Equal(t, []string{"Sales"}, col.Values)
}

// TestLoadFromFileMissing tests the error for a nonexistent path
func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("/nonexistent/input.yaml")
	assert.Error(t, err)
}

// TestLoadFromFileBadYAML tests the error for malformed YAML
func TestLoadFromFileBadYAML(t *testing.T) {
	parser := NewInputParser()
	path := writeInputFile(t, "taxpayer: [unclosed")
	_, err := parser.LoadFromFile(path)
	assert.Error(t, err)
}

// TestApplyDefaults tests model defaulting rules
func TestApplyDefaults(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name        string
		input       InputFile
		check       func(t *testing.T, input InputFile)
		description string
	}{
		{
			name:  "Empty type defaults to company",
			input: InputFile{},
			check: func(t *testing.T, input InputFile) {
				assert.Equal(t, domain.TaxpayerCompany, input.Computation.Model.Type)
				assert.True(t, input.Computation.Model.CompanyRate.Equal(domain.DefaultCompanyRate()))
			},
			description: "Unspecified models get the standard 30% company rate",
		},
		{
			name: "Individual without brackets gets the default table",
			input: InputFile{Computation: domain.ComputationInput{
				Model: domain.TaxModel{Type: domain.TaxpayerIndividual},
			}},
			check: func(t *testing.T, input InputFile) {
				assert.Len(t, input.Computation.Model.Brackets, 5)
			},
			description: "The resident individual schedule fills in",
		},
		{
			name: "Explicit zero rate reads as unset",
			input: InputFile{Computation: domain.ComputationInput{
				Model: domain.TaxModel{
					Type:        domain.TaxpayerCompany,
					CompanyRate: decimal.Zero,
				},
			}},
			check: func(t *testing.T, input InputFile) {
				assert.True(t, input.Computation.Model.CompanyRate.Equal(domain.DefaultCompanyRate()))
			},
			description: "The file format cannot express a zero company rate",
		},
		{
			name: "Explicit rate is preserved",
			input: InputFile{Computation: domain.ComputationInput{
				Model: domain.TaxModel{
					Type:        domain.TaxpayerCompany,
					CompanyRate: decimal.NewFromFloat(0.25),
				},
			}},
			check: func(t *testing.T, input InputFile) {
				assert.True(t, input.Computation.Model.CompanyRate.Equal(decimal.NewFromFloat(0.25)))
			},
			description: "Supplied rates are never overwritten",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser.ApplyDefaults(&tt.input)
			tt.check(t, tt.input)
		})
	}
}

// TestValidateInput tests rejection of malformed requests
func TestValidateInput(t *testing.T) {
	parser := NewInputParser()

	valid := func() InputFile {
		input := *parser.CreateExampleInput()
		return input
	}

	tests := []struct {
		name        string
		mutate      func(input *InputFile)
		wantErr     string
		description string
	}{
		{
			name:        "Valid example input",
			mutate:      func(input *InputFile) {},
			wantErr:     "",
			description: "The shipped example passes its own validation",
		},
		{
			name:        "Missing taxpayer name",
			mutate:      func(input *InputFile) { input.Taxpayer.Name = "" },
			wantErr:     "taxpayer name is required",
			description: "Name is mandatory",
		},
		{
			name:        "Year out of range",
			mutate:      func(input *InputFile) { input.Taxpayer.Year = 1887 },
			wantErr:     "out of range",
			description: "Years outside 2000-2100 are rejected",
		},
		{
			name:        "Period does not match year",
			mutate:      func(input *InputFile) { input.Taxpayer.Period = "FY2020/21" },
			wantErr:     "does not match year",
			description: "A parseable period must agree with the declared year",
		},
		{
			name: "Negative revenue",
			mutate: func(input *InputFile) {
				input.Computation.Revenue = decimal.NewFromInt(-1)
			},
			wantErr:     "revenue cannot be negative",
			description: "P&L inputs must be non-negative",
		},
		{
			name: "Adjustment without name",
			mutate: func(input *InputFile) {
				input.Computation.Adjustments = append(input.Computation.Adjustments,
					domain.AdjustmentEntry{Amount: decimal.NewFromInt(100), Category: domain.CategoryAddback})
			},
			wantErr:     "name is required",
			description: "Adjustments identify by name",
		},
		{
			name: "Adjustment with bad category",
			mutate: func(input *InputFile) {
				input.Computation.Adjustments = []domain.AdjustmentEntry{
					{Name: "Depreciation", Amount: decimal.NewFromInt(100), Category: "deduction"},
				}
			},
			wantErr:     "category must be",
			description: "Only addback and allowable are recognized",
		},
		{
			name: "Catalogued allowable filed as addback",
			mutate: func(input *InputFile) {
				input.Computation.Adjustments = []domain.AdjustmentEntry{
					domain.Addback("Wear & Tear (Section 27(1))", decimal.NewFromInt(100)),
				}
			},
			wantErr:     "catalogued as an allowable deduction",
			description: "Statutory names must keep their catalogued category",
		},
		{
			name: "Catalogued addback filed as allowable",
			mutate: func(input *InputFile) {
				input.Computation.Adjustments = []domain.AdjustmentEntry{
					domain.Allowable("Depreciation (Section 22(3)(b))", decimal.NewFromInt(100)),
				}
			},
			wantErr:     "catalogued as an addback",
			description: "Statutory names must keep their catalogued category",
		},
		{
			name: "Uncatalogued name passes with either category",
			mutate: func(input *InputFile) {
				input.Computation.Adjustments = []domain.AdjustmentEntry{
					domain.Addback("Bespoke provision", decimal.NewFromInt(100)),
				}
			},
			wantErr:     "",
			description: "The catalog constrains only its own names",
		},
		{
			name: "Invalid bracket table fails closed",
			mutate: func(input *InputFile) {
				input.Computation.Model = domain.TaxModel{
					Type: domain.TaxpayerIndividual,
					Brackets: []domain.BracketTier{
						{Threshold: decimal.Zero, Rate: decimal.NewFromInt(2), Fixed: decimal.Zero},
					},
				}
			},
			wantErr:     "invalid tax model",
			description: "Structural model violations surface before computing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)
			err := parser.ValidateInput(&input)
			if tt.wantErr == "" {
				assert.NoError(t, err, tt.description)
			} else {
				require.Error(t, err, tt.description)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// TestCreateExampleInput verifies the example is complete and self-consistent
func TestCreateExampleInput(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleInput()

	assert.Equal(t, "Acme Ltd", example.Taxpayer.Name)
	assert.Equal(t, domain.TaxpayerCompany, example.Computation.Model.Type)
	require.NotNil(t, example.Ledger)
	assert.False(t, example.Ledger.Dataset().Empty())
	assert.NoError(t, parser.ValidateInput(example))
}
