package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
)

// ConsoleFormatter renders a full assessment breakdown for terminal display.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(a *domain.Assessment) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INCOME TAX ASSESSMENT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Taxpayer: %s", a.Taxpayer.Name)
	if a.Taxpayer.TIN != "" {
		fmt.Fprintf(&buf, " (TIN %s)", a.Taxpayer.TIN)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Period:   %s\n", a.Taxpayer.Period)
	fmt.Fprintf(&buf, "Type:     %s\n", a.Input.Model.Type)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Profit & Loss")
	fmt.Fprintf(&buf, "  Revenue:             %s\n", FormatCurrency(a.Input.Revenue))
	fmt.Fprintf(&buf, "  Cost of Goods Sold:  %s\n", FormatCurrency(a.Input.COGS))
	fmt.Fprintf(&buf, "  Operating Expenses:  %s\n", FormatCurrency(a.Input.OperatingExpenses))
	fmt.Fprintf(&buf, "  Other Income:        %s\n", FormatCurrency(a.Input.OtherIncome))
	fmt.Fprintf(&buf, "  Other Expenses:      %s\n", FormatCurrency(a.Input.OtherExpenses))
	fmt.Fprintf(&buf, "  PBIT:                %s\n", FormatCurrency(a.Result.PBIT))
	fmt.Fprintln(&buf)

	writeAdjustments(&buf, a.Input.Adjustments)

	fmt.Fprintln(&buf, "Tax Computation")
	fmt.Fprintf(&buf, "  Adjusted Profit:     %s\n", FormatCurrency(a.Result.AdjustedProfit))
	fmt.Fprintf(&buf, "  Chargeable Income:   %s\n", FormatCurrency(a.Result.ChargeableIncome))
	fmt.Fprintf(&buf, "  Capital Allowances:  %s\n", FormatCurrency(a.Input.CapitalAllowances))
	fmt.Fprintf(&buf, "  Exemptions:          %s\n", FormatCurrency(a.Input.Exemptions))
	fmt.Fprintf(&buf, "  Taxable Income:      %s\n", FormatCurrency(a.Result.TaxableIncome))
	fmt.Fprintf(&buf, "  Gross Tax:           %s\n", FormatCurrency(a.Result.GrossTax))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Credits & Reliefs")
	fmt.Fprintf(&buf, "  WHT Credits:         %s\n", FormatCurrency(a.Input.CreditsWHT))
	fmt.Fprintf(&buf, "  Foreign Tax Credits: %s\n", FormatCurrency(a.Input.CreditsForeign))
	fmt.Fprintf(&buf, "  Rebates:             %s\n", FormatCurrency(a.Input.Rebates))
	fmt.Fprintf(&buf, "  Net Tax Payable:     %s\n", FormatCurrency(a.Result.NetTaxPayable))
	fmt.Fprintf(&buf, "  Provisional Tax:     %s\n", FormatCurrency(a.Input.ProvisionalTaxPaid))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "NET TAX AFTER PROVISIONAL: %s\n", FormatCurrency(a.Result.NetTaxAfterProvisional))
	return buf.Bytes(), nil
}

func writeAdjustments(buf *bytes.Buffer, entries []domain.AdjustmentEntry) {
	if len(entries) == 0 {
		return
	}
	addbacks := filterByCategory(entries, domain.CategoryAddback)
	allowables := filterByCategory(entries, domain.CategoryAllowable)
	if len(addbacks) > 0 {
		fmt.Fprintln(buf, "Addbacks")
		for _, e := range addbacks {
			fmt.Fprintf(buf, "  %-20s %s\n", e.Name+":", FormatCurrency(e.Amount))
		}
		fmt.Fprintln(buf)
	}
	if len(allowables) > 0 {
		fmt.Fprintln(buf, "Allowable Deductions")
		for _, e := range allowables {
			fmt.Fprintf(buf, "  %-20s %s\n", e.Name+":", FormatCurrency(e.Amount))
		}
		fmt.Fprintln(buf)
	}
}

func filterByCategory(entries []domain.AdjustmentEntry, cat domain.AdjustmentCategory) []domain.AdjustmentEntry {
	out := make([]domain.AdjustmentEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
