package calculation

import (
	"strings"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/shopspring/decimal"
)

// PLTotals holds the five canonical profit-and-loss buckets produced by
// ledger classification.
type PLTotals struct {
	Revenue           decimal.Decimal
	COGS              decimal.Decimal
	OperatingExpenses decimal.Decimal
	OtherIncome       decimal.Decimal
	OtherExpenses     decimal.Decimal
}

// PBIT returns profit before income tax: (revenue + other income) minus
// (cost of goods + operating expense + other expense). May be negative.
func (p PLTotals) PBIT() decimal.Decimal {
	return p.Revenue.Add(p.OtherIncome).
		Sub(p.COGS.Add(p.OperatingExpenses).Add(p.OtherExpenses))
}

// Explicit column names recognized for direct bucket sums.
var explicitColumns = map[string]func(*PLTotals, decimal.Decimal){
	"revenue":            func(p *PLTotals, d decimal.Decimal) { p.Revenue = p.Revenue.Add(d) },
	"cogs":               func(p *PLTotals, d decimal.Decimal) { p.COGS = p.COGS.Add(d) },
	"operating_expenses": func(p *PLTotals, d decimal.Decimal) { p.OperatingExpenses = p.OperatingExpenses.Add(d) },
	"other_income":       func(p *PLTotals, d decimal.Decimal) { p.OtherIncome = p.OtherIncome.Add(d) },
	"other_expenses":     func(p *PLTotals, d decimal.Decimal) { p.OtherExpenses = p.OtherExpenses.Add(d) },
}

// Keyword sets for account-name classification. A row is added to EVERY
// bucket whose keyword set matches, so an account like "income & expense
// recovery" counts in both revenue and operating expenses. This double
// counting is long-standing upstream behavior and is kept for compatibility;
// deduplicating here would silently change filed figures.
var bucketKeywords = []struct {
	keywords []string
	add      func(*PLTotals, decimal.Decimal)
}{
	{[]string{"income", "sales", "revenue"}, func(p *PLTotals, d decimal.Decimal) { p.Revenue = p.Revenue.Add(d) }},
	{[]string{"cogs", "cost of goods"}, func(p *PLTotals, d decimal.Decimal) { p.COGS = p.COGS.Add(d) }},
	{[]string{"expense", "utilities", "rent", "salary", "transport", "admin"}, func(p *PLTotals, d decimal.Decimal) { p.OperatingExpenses = p.OperatingExpenses.Add(d) }},
	{[]string{"other income", "gain"}, func(p *PLTotals, d decimal.Decimal) { p.OtherIncome = p.OtherIncome.Add(d) }},
	{[]string{"other expense", "loss"}, func(p *PLTotals, d decimal.Decimal) { p.OtherExpenses = p.OtherExpenses.Add(d) }},
}

// ClassifyLedger maps a raw tabular dataset into the five P&L buckets.
// Explicit named columns and account/amount rows are both honored and their
// contributions are additive. Missing columns simply leave buckets at zero;
// an empty dataset yields all-zero totals rather than an error.
func ClassifyLedger(ds *domain.Dataset) PLTotals {
	var totals PLTotals
	if ds.Empty() {
		return totals
	}

	for name, add := range explicitColumns {
		if col, ok := ds.Column(name); ok {
			add(&totals, col.SumNumeric())
		}
	}

	accounts, haveAccounts := ds.Column("account")
	amounts, haveAmounts := ds.Column("amount")
	if !haveAccounts || !haveAmounts {
		return totals
	}

	n := len(accounts.Values)
	if len(amounts.Values) < n {
		n = len(amounts.Values)
	}
	for i := 0; i < n; i++ {
		amount, ok := domain.ParseCell(amounts.Values[i])
		if !ok {
			continue
		}
		account := strings.ToLower(accounts.Values[i])
		for _, bucket := range bucketKeywords {
			if matchesAny(account, bucket.keywords) {
				bucket.add(&totals, amount)
			}
		}
	}
	return totals
}

// ApplyTotals adds classified bucket totals onto an input's P&L fields.
// Buckets are additive, so directly supplied totals and classified ledger
// contributions combine.
func ApplyTotals(input domain.ComputationInput, totals PLTotals) domain.ComputationInput {
	input.Revenue = input.Revenue.Add(totals.Revenue)
	input.COGS = input.COGS.Add(totals.COGS)
	input.OperatingExpenses = input.OperatingExpenses.Add(totals.OperatingExpenses)
	input.OtherIncome = input.OtherIncome.Add(totals.OtherIncome)
	input.OtherExpenses = input.OtherExpenses.Add(totals.OtherExpenses)
	return input
}

func matchesAny(account string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(account, kw) {
			return true
		}
	}
	return false
}
