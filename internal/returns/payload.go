package returns

import (
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
)

// FormCodeFor maps a taxpayer type to its registered form code.
func FormCodeFor(t domain.TaxpayerType) string {
	if t == domain.TaxpayerCompany {
		return FormCompany
	}
	return FormIndividual
}

// PayloadFrom assembles the return payload for an assessment. The form code
// follows the taxpayer type of the assessment's model; callers may still
// amend individual fields before building.
func PayloadFrom(a domain.Assessment) (string, map[string]any) {
	if a.Input.Model.Type == domain.TaxpayerCompany {
		return FormCompany, companyPayload(a)
	}
	return FormIndividual, individualPayload(a)
}

func individualPayload(a domain.Assessment) map[string]any {
	return map[string]any{
		"TIN":                        a.Taxpayer.TIN,
		"Taxpayer Name":              a.Taxpayer.Name,
		"Period":                     a.Taxpayer.Period,
		"Year":                       a.Taxpayer.Year,
		"Business Income (UGX)":      a.Result.ChargeableIncome,
		"Allowable Deductions (UGX)": a.Result.TotalAllowables,
		"Capital Allowances (UGX)":   a.Input.CapitalAllowances,
		"Exemptions (UGX)":           a.Input.Exemptions,
		"Taxable Income (UGX)":       a.Result.TaxableIncome,
		"Gross Tax (UGX)":            a.Result.GrossTax,
		"WHT Credits (UGX)":          a.Input.CreditsWHT,
		"Foreign Tax Credit (UGX)":   a.Input.CreditsForeign,
		"Rebates (UGX)":              a.Input.Rebates,
		"Net Tax Payable (UGX)":      a.Result.NetTaxPayable,
	}
}

func companyPayload(a domain.Assessment) map[string]any {
	return map[string]any{
		"TIN":                      a.Taxpayer.TIN,
		"Entity Name":              a.Taxpayer.Name,
		"Period":                   a.Taxpayer.Period,
		"Year":                     a.Taxpayer.Year,
		"Gross Turnover (UGX)":     a.Input.Revenue,
		"COGS (UGX)":               a.Input.COGS,
		"Operating Expenses (UGX)": a.Input.OperatingExpenses,
		"Other Income (UGX)":       a.Input.OtherIncome,
		"Other Expenses (UGX)":     a.Input.OtherExpenses,
		"Capital Allowances (UGX)": a.Input.CapitalAllowances,
		"Exemptions (UGX)":         a.Input.Exemptions,
		"Taxable Income (UGX)":     a.Result.TaxableIncome,
		"Gross Tax (UGX)":          a.Result.GrossTax,
		"WHT Credits (UGX)":        a.Input.CreditsWHT,
		"Foreign Tax Credit (UGX)": a.Input.CreditsForeign,
		"Rebates (UGX)":            a.Input.Rebates,
		"Net Tax Payable (UGX)":    a.Result.NetTaxPayable,
	}
}
