package domain

// Statutory adjustment catalogs for the ITA Cap 338 business income tax
// computation. Entry names carry the section reference used on the return;
// collaborators build adjustment ledgers from these names so that section
// tags stay consistent across computations.

// StatutoryAddbacks lists the disallowable expense and income line items
// added back to PBIT when computing adjusted profit.
var StatutoryAddbacks = []string{
	"Depreciation (Section 22(3)(b))",
	"Amortisation",
	"Redundancy",
	"Domestic/Private Expenditure (Section 22(3)(a))",
	"Capital Gain (Sections 22(1)(b), 47, 48)",
	"Rental Income Loss (Section 22(1)(c))",
	"Expenses Exceeding 50% of Rental Income (Section 22(2))",
	"Capital Nature Expenditure (Section 22(3)(b))",
	"Recoverable Expenditure (Section 22(3)(c))",
	"Income Tax Paid Abroad (Section 22(3)(d))",
	"Capitalised Income (Section 22(3)(e))",
	"Gift Cost not in Recipient Income (Section 22(3)(f))",
	"Fines or Penalties (Section 22(3)(g))",
	"Employee Retirement Contributions (Section 22(3)(h))",
	"Life Insurance Premiums (Section 22(3)(i))",
	"Pension Payments (Section 22(3)(j))",
	"Alimony / Allowance (Section 22(3)(k))",
	"Suppliers without TIN > UGX5M (Section 22(3)(l))",
	"EFRIS Suppliers w/o e-invoices (Section 22(3)(m))",
	"Debt Obligation Principal (Section 25)",
	"Interest on Capital Assets (Sections 22(3) & 50(2))",
	"Interest on Fixed Capital (Section 25(1))",
	"Bad Debts Recovered (Section 61)",
	"General Provision for Bad Debts (Section 24)",
	"Entertainment Income (Section 23)",
	"Meal & Refreshment Expenses (Section 23)",
	"Charitable Donations to Non-Exempt Orgs (Section 33(1))",
	"Charitable Donations >5% Chargeable Income (Section 33(3))",
	"Legal Fees",
	"Legal Expenses - Capital Items (Section 50)",
	"Legal Expenses - New Trade Rights",
	"Legal Expenses - Breach of Law",
	"Cost of Breach of Contract - Capital Account",
	"Legal Expenses on Breach of Contract - Capital Account",
	"Legal Expenses on Loan Renewals - Non-commercial",
	"Bad Debts by Senior Employee/Management",
	"General Provisions Bad Debts (FI Credit Classification)",
	"Loss on Sale of Fixed Assets (Section 22(3)(b))",
	"Loss on Other Capital Items (Section 22(3)(b))",
	"Expenditure on Share Capital Increase (Section 22(3)(b))",
	"Dividends Paid (Section 22(3)(d))",
	"Provision for Bad Debts (Non-Financial Institutions) (Section 24)",
	"Increase in Provision for Bad Debts (Section 24)",
	"Debt Collection Expenses related to Capital Expenditure",
	"Foreign Currency Debt Gains (Section 46(2))",
	"Costs incidental to Capital Asset (Stamp Duty, Section 50)",
	"Non-Business Expenses (Section 22)",
	"Miscellaneous Staff Costs",
	"Staff Costs - Commuting (Section 22(4)(b))",
	"First Time Work Permits",
	"Unrealised Foreign Exchange Losses (Section 46(3))",
	"Foreign Currency Debt Losses (Section 46)",
	"Education Expenditure (Non Section 32)",
	"Donations (Non Section 33)",
	"Decommissioning Expenditure by Licensee (Section 99(2))",
	"Telephone Costs (10%)",
	"Revaluation Loss",
	"Interest Expense on Treasury Bills (Section 139(e))",
	"Burial Expenses (Section 22(3)(b))",
	"Subscription (Section 22(3)(a))",
	"Interest on Directors Debit Balances (Section 22(3)(a))",
	"Entertainment Expenses (Section 23)",
	"Gifts (Section 22(3)(f))",
	"Income Carried to Reserve Fund (Section 22(3)(e))",
	"Impairment Losses on Loans and Advances",
	"Interest Expense on Treasury Bonds (Section 139(e))",
	"Staff Leave Provisions (Section 22(4)(b))",
	"Increase in Gratuity",
	"Balancing Charge (Sections 27(5) & 18(1))",
}

// StatutoryAllowables lists the allowable deduction line items subtracted
// from adjusted profit when computing chargeable income.
var StatutoryAllowables = []string{
	"Wear & Tear (Section 27(1))",
	"Industrial Building Allowance (5% for 20 years) (Section 28(1))",
	"Startup Costs (25%) (Section 28)",
	"Reverse VAT (Section 22(1)(a))",
	"Listing Business with Uganda Stock Exchange (Section 29(2)(a))",
	"Registration Fees, Accountant Fees, Legal Fees, Advertising, Training (Section 29(2)(b))",
	"Expenses in Acquiring Intangible Asset (Section 30(1))",
	"Disposal of Intangible Asset (Section 30(2))",
	"Minor Capital Expenditure (Minor Capex) (Section 26(2))",
	"Revenue Expenditures - Repairs & Maintenance (Section 26)",
	"Expenditure on Scientific Research (Section 31(1))",
	"Expenditure on Training (Education) (Section 32(1))",
	"Charitable Donations to Exempt Organisations (Section 33(1))",
	"Charitable Donations Up to 5% Chargeable Income (Section 33(3))",
	"Expenditure on Farming (Section 34)",
	"Apportionment of Deductions (Section 35)",
	"Carry Forward Losses from Previous Period (Section 36(1))",
	"Carry Forward Losses Upto 50% after 7 Years (Section 36(6))",
	"Disposal of Trading Stock (Section 44(1))",
	"Foreign Currency Debt Loss (Realised Exchange Loss) (Section 46(3))",
	"Loss on Disposal of Asset (Section 48)",
	"Exclusion of Doctrine Mutuality (Section 59(3))",
	"Partnership Loss for Resident Partner (Section 66(3))",
	"Partnership Loss for Non-Resident Partner (Section 66(4))",
	"Expenditure or Loss by Trustee Beneficiary (Section 71(5))",
	"Expenditure or Loss by Beneficiary of Deceased Estate (Section 72(2))",
	"Limitation on Deduction for Petroleum Operations (Section 91(1))",
	"Decommission Costs & Expenditures - Petroleum (Section 99(2))",
	"Unrealised Gains (Section 46)",
	"Impairment of Asset",
	"Decrease in Provision for Bad Debts (Section 24)",
	"Bad Debts Written Off (Section 24)",
	"Staff Costs - Business Travel (Section 22)",
	"Private Employer Disability Tax (Section 22(1)(e))",
	"Rental Income Expenditure & Losses (Section 22(1)(c)(2))",
	"Local Service Tax (Section 22(1)(d))",
	"Interest Income on Treasury Bills (Section 139(a))",
	"Interest on Circulating Capital",
	"Interest Income on Treasury Bonds (Section 139(a))",
	"Specific Provisions for Bad Debts (Financial Institutions)",
	"Revaluation Gains (Financial Institutions)",
	"Rental Income (Section 5(3)(a))",
	"Interest Income from Treasury Bills (Section 139(a)(c)(d))",
	"Interest Income from Treasury Bonds (Section 139(a)(c)(d))",
	"Legal Expenses on Breach of Contract to Revenue Account",
	"Legal Expenses on Maintenance of Capital Assets",
	"Legal Expenses on Existing Trade Rights",
	"Legal Expenses Incidental to Revenue Items",
	"Legal Expenses on Debt Collection - Trade Debts",
	"Closing Tax Written Down Value < UGX1M (Section 27(6))",
	"Intangible Assets",
	"Legal Expenses for Renewal of Loans (Financial Institutions)",
	"Interest on Debt Obligation (Loan) (Section 25(1))",
	"Interest on Debt Obligation by Group Member (30% EBITDA) (Section 25(3))",
	"Gains & Losses on Disposal of Assets (Section 22(1)(b))",
	"Balancing Allowance (Sections 27(7))",
}

var (
	statutoryAddbackSet   = toSet(StatutoryAddbacks)
	statutoryAllowableSet = toSet(StatutoryAllowables)
)

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// IsStatutoryAddback reports whether name is a catalogued addback line item.
func IsStatutoryAddback(name string) bool {
	_, ok := statutoryAddbackSet[name]
	return ok
}

// IsStatutoryAllowable reports whether name is a catalogued allowable line item.
func IsStatutoryAllowable(name string) bool {
	_, ok := statutoryAllowableSet[name]
	return ok
}
