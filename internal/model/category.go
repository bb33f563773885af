package model

// Category classifies a book transaction for reporting.
type Category string

const (
	CategoryRevenue             Category = "revenue"
	CategoryCostOfGoodsSold     Category = "cost_of_goods_sold"
	CategoryOperatingExpense    Category = "operating_expense"
	CategoryOtherIncome         Category = "other_income"
	CategoryOtherExpense        Category = "other_expense"
	CategoryTax                 Category = "tax"
	CategoryCurrentAsset        Category = "current_asset"
	CategoryNonCurrentAsset     Category = "non_current_asset"
	CategoryCurrentLiability    Category = "current_liability"
	CategoryNonCurrentLiability Category = "non_current_liability"
	CategoryEquity              Category = "equity"
	CategoryOperatingCash       Category = "operating_cash"
	CategoryInvestingCash       Category = "investing_cash"
	CategoryFinancingCash       Category = "financing_cash"
)

// Categories lists every category in a fixed order, used wherever
// deterministic iteration matters.
var Categories = []Category{
	CategoryRevenue,
	CategoryCostOfGoodsSold,
	CategoryOperatingExpense,
	CategoryOtherIncome,
	CategoryOtherExpense,
	CategoryTax,
	CategoryCurrentAsset,
	CategoryNonCurrentAsset,
	CategoryCurrentLiability,
	CategoryNonCurrentLiability,
	CategoryEquity,
	CategoryOperatingCash,
	CategoryInvestingCash,
	CategoryFinancingCash,
}

// CreditNormal reports whether the category accumulates on the credit
// side (revenue, other income, liabilities, equity). Assets, expenses and
// the cash-flow buckets accumulate on the debit side.
func (c Category) CreditNormal() bool {
	switch c {
	case CategoryRevenue, CategoryOtherIncome, CategoryCurrentLiability,
		CategoryNonCurrentLiability, CategoryEquity:
		return true
	}
	return false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
