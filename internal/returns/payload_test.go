package returns

import (
	"testing"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment(taxpayerType domain.TaxpayerType) domain.Assessment {
	return domain.Assessment{
		Taxpayer: domain.Taxpayer{
			TIN:    "1000123456",
			Name:   "Acme Ltd",
			Period: "FY2024/25",
			Year:   2024,
		},
		Input: domain.ComputationInput{
			Revenue:           decimal.NewFromInt(250000000),
			COGS:              decimal.NewFromInt(90000000),
			OperatingExpenses: decimal.NewFromInt(60000000),
			CapitalAllowances: decimal.NewFromInt(5000000),
			CreditsWHT:        decimal.NewFromInt(2000000),
			Model:             domain.TaxModel{Type: taxpayerType},
		},
		Result: domain.ComputationResult{
			TotalAllowables:  decimal.NewFromInt(9000000),
			ChargeableIncome: decimal.NewFromInt(106500000),
			TaxableIncome:    decimal.NewFromInt(101500000),
			GrossTax:         decimal.NewFromInt(30450000),
			NetTaxPayable:    decimal.NewFromInt(28450000),
		},
	}
}

// TestFormCodeFor verifies taxpayer type to form code mapping
func TestFormCodeFor(t *testing.T) {
	assert.Equal(t, FormCompany, FormCodeFor(domain.TaxpayerCompany))
	assert.Equal(t, FormIndividual, FormCodeFor(domain.TaxpayerIndividual))
}

// TestPayloadFromCompany verifies the DT-2002 payload builds a valid record
func TestPayloadFromCompany(t *testing.T) {
	formCode, payload := PayloadFrom(sampleAssessment(domain.TaxpayerCompany))
	assert.Equal(t, FormCompany, formCode)

	record, err := Build(formCode, payload)
	require.NoError(t, err)

	turnover, ok := record.Value("Gross Turnover (UGX)")
	require.True(t, ok)
	assert.True(t, turnover.(decimal.Decimal).Equal(decimal.NewFromInt(250000000)),
		"company turnover comes from input revenue")

	gross, _ := record.Value("Gross Tax (UGX)")
	assert.True(t, gross.(decimal.Decimal).Equal(decimal.NewFromInt(30450000)))
}

// TestPayloadFromIndividual verifies the DT-2001 payload builds a valid record
func TestPayloadFromIndividual(t *testing.T) {
	formCode, payload := PayloadFrom(sampleAssessment(domain.TaxpayerIndividual))
	assert.Equal(t, FormIndividual, formCode)

	record, err := Build(formCode, payload)
	require.NoError(t, err)

	income, ok := record.Value("Business Income (UGX)")
	require.True(t, ok)
	assert.True(t, income.(decimal.Decimal).Equal(decimal.NewFromInt(106500000)),
		"individual business income reports chargeable income")

	name, _ := record.Value("Taxpayer Name")
	assert.Equal(t, "Acme Ltd", name)
}
