package returns

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIndividualPayload() map[string]any {
	return map[string]any{
		"TIN":                        "1000123456",
		"Taxpayer Name":              "Okello James",
		"Period":                     "FY2024/25",
		"Year":                       2024,
		"Business Income (UGX)":      decimal.NewFromInt(48000000),
		"Allowable Deductions (UGX)": decimal.NewFromInt(6000000),
		"Capital Allowances (UGX)":   decimal.NewFromInt(2000000),
		"Exemptions (UGX)":           decimal.Zero,
		"Taxable Income (UGX)":       decimal.NewFromInt(40000000),
		"Gross Tax (UGX)":            decimal.NewFromInt(13830000),
		"WHT Credits (UGX)":          decimal.NewFromInt(1000000),
		"Foreign Tax Credit (UGX)":   decimal.Zero,
		"Rebates (UGX)":              decimal.Zero,
		"Net Tax Payable (UGX)":      decimal.NewFromInt(12830000),
	}
}

// TestBuildIndividualReturn tests a complete DT-2001 build
func TestBuildIndividualReturn(t *testing.T) {
	record, err := Build(FormIndividual, validIndividualPayload())
	require.NoError(t, err)

	assert.Equal(t, FormIndividual, record.FormCode)
	assert.Equal(t, []string{
		"TIN",
		"Taxpayer Name",
		"Period",
		"Year",
		"Business Income (UGX)",
		"Allowable Deductions (UGX)",
		"Capital Allowances (UGX)",
		"Exemptions (UGX)",
		"Taxable Income (UGX)",
		"Gross Tax (UGX)",
		"WHT Credits (UGX)",
		"Foreign Tax Credit (UGX)",
		"Rebates (UGX)",
		"Net Tax Payable (UGX)",
	}, record.Headers(), "header order must match the declared schema")

	strings := record.Strings()
	assert.Equal(t, "1000123456", strings[0])
	assert.Equal(t, "2024", strings[3])
	assert.Equal(t, "13830000.00", strings[9], "decimal values render with 2 places")

	name, ok := record.Value("Taxpayer Name")
	require.True(t, ok)
	assert.Equal(t, "Okello James", name)
}

// TestBuildMissingField verifies a ValidationError naming the absent field
func TestBuildMissingField(t *testing.T) {
	payload := validIndividualPayload()
	delete(payload, "Gross Tax (UGX)")

	_, err := Build(FormIndividual, payload)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Gross Tax (UGX)", vErr.Field)
	assert.Equal(t, FormIndividual, vErr.FormCode)
}

// TestBuildCoercionFailure verifies a CoercionError naming the bad field
func TestBuildCoercionFailure(t *testing.T) {
	payload := validIndividualPayload()
	payload["Taxable Income (UGX)"] = "not-a-number"

	_, err := Build(FormIndividual, payload)
	require.Error(t, err)

	var cErr *CoercionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "Taxable Income (UGX)", cErr.Field)
	assert.Equal(t, FieldDecimal, cErr.Type)
}

// TestBuildNonFiniteFloat verifies NaN and infinity fail as coercion errors
func TestBuildNonFiniteFloat(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value float64
	}{
		{"NaN decimal field", "Exemptions (UGX)", math.NaN()},
		{"Positive infinity decimal field", "Rebates (UGX)", math.Inf(1)},
		{"NaN int field", "Year", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validIndividualPayload()
			payload[tt.field] = tt.value

			_, err := Build(FormIndividual, payload)
			require.Error(t, err)

			var cErr *CoercionError
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.field, cErr.Field)
		})
	}
}

// TestBuildUnknownForm verifies an UnknownFormError for unregistered codes
func TestBuildUnknownForm(t *testing.T) {
	_, err := Build("DT-9999", map[string]any{})
	require.Error(t, err)

	var uErr *UnknownFormError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "DT-9999", uErr.FormCode)
}

// TestBuildCoercesCompatibleTypes verifies lenient inputs reach declared types
func TestBuildCoercesCompatibleTypes(t *testing.T) {
	payload := validIndividualPayload()
	payload["Year"] = "2024"
	payload["Business Income (UGX)"] = "48000000.50"
	payload["Exemptions (UGX)"] = 250000
	payload["TIN"] = 1000123456

	record, err := Build(FormIndividual, payload)
	require.NoError(t, err)

	year, _ := record.Value("Year")
	assert.Equal(t, 2024, year, "string years parse to int")

	income, _ := record.Value("Business Income (UGX)")
	assert.True(t, income.(decimal.Decimal).Equal(decimal.NewFromFloat(48000000.50)),
		"string amounts parse to decimal")

	exemptions, _ := record.Value("Exemptions (UGX)")
	assert.True(t, exemptions.(decimal.Decimal).Equal(decimal.NewFromInt(250000)),
		"int amounts widen to decimal")

	tin, _ := record.Value("TIN")
	assert.Equal(t, "1000123456", tin, "non-string TINs stringify")
}

// TestBuildIsIdempotent verifies repeated builds of one payload agree
func TestBuildIsIdempotent(t *testing.T) {
	payload := validIndividualPayload()

	first, err := Build(FormIndividual, payload)
	require.NoError(t, err)
	second, err := Build(FormIndividual, payload)
	require.NoError(t, err)

	assert.Equal(t, first.Headers(), second.Headers())
	assert.Equal(t, first.Strings(), second.Strings())
}

// TestRegisteredForms verifies both statutory forms are registered
func TestRegisteredForms(t *testing.T) {
	assert.Equal(t, []string{FormIndividual, FormCompany}, RegisteredForms())
}

// TestCompanySchemaFields verifies the DT-2002 layout carries the P&L detail
func TestCompanySchemaFields(t *testing.T) {
	schema, err := Schema(FormCompany)
	require.NoError(t, err)

	assert.Equal(t, FormCompany, schema.FormCode)
	assert.Equal(t, "Entity Name", schema.Fields[1].Name)
	assert.Equal(t, "Gross Turnover (UGX)", schema.Fields[4].Name)
	assert.Len(t, schema.Fields, 17)
}
