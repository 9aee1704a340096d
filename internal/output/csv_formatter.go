package output

import (
	"bytes"
	"encoding/csv"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
)

// CSVFormatter emits the computation as Step,Amount rows in reduction order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(a *domain.Assessment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Step", "Amount (UGX)"}); err != nil {
		return nil, err
	}
	rows := [][2]string{
		{"Revenue", a.Input.Revenue.StringFixed(2)},
		{"Cost of Goods Sold", a.Input.COGS.StringFixed(2)},
		{"Operating Expenses", a.Input.OperatingExpenses.StringFixed(2)},
		{"Other Income", a.Input.OtherIncome.StringFixed(2)},
		{"Other Expenses", a.Input.OtherExpenses.StringFixed(2)},
		{"PBIT", a.Result.PBIT.StringFixed(2)},
		{"Total Addbacks", a.Result.TotalAddbacks.StringFixed(2)},
		{"Adjusted Profit", a.Result.AdjustedProfit.StringFixed(2)},
		{"Total Allowable Deductions", a.Result.TotalAllowables.StringFixed(2)},
		{"Chargeable Income", a.Result.ChargeableIncome.StringFixed(2)},
		{"Capital Allowances", a.Input.CapitalAllowances.StringFixed(2)},
		{"Exemptions", a.Input.Exemptions.StringFixed(2)},
		{"Taxable Income", a.Result.TaxableIncome.StringFixed(2)},
		{"Gross Tax", a.Result.GrossTax.StringFixed(2)},
		{"WHT Credits", a.Input.CreditsWHT.StringFixed(2)},
		{"Foreign Tax Credits", a.Input.CreditsForeign.StringFixed(2)},
		{"Rebates", a.Input.Rebates.StringFixed(2)},
		{"Net Tax Payable", a.Result.NetTaxPayable.StringFixed(2)},
		{"Provisional Tax Paid", a.Input.ProvisionalTaxPaid.StringFixed(2)},
		{"Net Tax After Provisional", a.Result.NetTaxAfterProvisional.StringFixed(2)},
	}
	for _, row := range rows {
		if err := w.Write([]string{row[0], row[1]}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
