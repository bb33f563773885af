// Package summary folds categorized book transactions into a basic
// financial statement: P&L, balance sheet and cash flow. It is
// independent of reconciliation and shares only the category taxonomy.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Generate aggregates transactions into a FinancialSummary. Each
// transaction contributes +/- its amount depending on its side and
// whether its category is credit-normal.
func Generate(txns []model.BookTransaction) *model.FinancialSummary {
	totals := make(map[model.Category]decimal.Decimal, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = decimal.Zero
	}

	for _, t := range txns {
		if !t.Category.Valid() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(categoryImpact(t))
	}

	for c, v := range totals {
		totals[c] = model.Round2(v)
	}

	s := &model.FinancialSummary{CategoryTotals: totals}
	s.ProfitAndLoss = profitAndLoss(totals)
	s.BalanceSheet = balanceSheet(totals)
	s.CashFlow = cashFlow(totals)

	if !s.BalanceSheet.IsBalanced {
		s.Warnings = append(s.Warnings,
			"balance sheet does not balance: assets differ from liabilities plus equity by "+
				s.BalanceSheet.Difference.StringFixed(2))
	}
	if s.CashFlow.Operating.IsZero() && s.CashFlow.Investing.IsZero() && s.CashFlow.Financing.IsZero() {
		s.Warnings = append(s.Warnings,
			"no transactions were categorized into cash-flow buckets; cash flow section is empty")
	}
	return s
}

// categoryImpact signs the amount: credit-normal categories accumulate
// on credits, everything else on debits.
func categoryImpact(t model.BookTransaction) decimal.Decimal {
	creditSide := t.Type == model.TxnCredit
	if t.Category.CreditNormal() == creditSide {
		return t.Amount
	}
	return t.Amount.Neg()
}

func profitAndLoss(totals map[model.Category]decimal.Decimal) model.ProfitAndLoss {
	pl := model.ProfitAndLoss{
		Revenue:          totals[model.CategoryRevenue],
		CostOfGoodsSold:  totals[model.CategoryCostOfGoodsSold],
		OperatingExpense: totals[model.CategoryOperatingExpense],
		OtherIncome:      totals[model.CategoryOtherIncome],
		OtherExpense:     totals[model.CategoryOtherExpense],
		Tax:              totals[model.CategoryTax],
	}
	pl.GrossProfit = model.Round2(pl.Revenue.Sub(pl.CostOfGoodsSold))
	pl.NetIncome = model.Round2(pl.Revenue.
		Add(pl.OtherIncome).
		Sub(pl.CostOfGoodsSold).
		Sub(pl.OperatingExpense).
		Sub(pl.OtherExpense).
		Sub(pl.Tax))
	return pl
}

func balanceSheet(totals map[model.Category]decimal.Decimal) model.BalanceSheet {
	bs := model.BalanceSheet{
		CurrentAssets:         totals[model.CategoryCurrentAsset],
		NonCurrentAssets:      totals[model.CategoryNonCurrentAsset],
		CurrentLiabilities:    totals[model.CategoryCurrentLiability],
		NonCurrentLiabilities: totals[model.CategoryNonCurrentLiability],
		Equity:                totals[model.CategoryEquity],
	}
	bs.TotalAssets = model.Round2(bs.CurrentAssets.Add(bs.NonCurrentAssets))
	bs.TotalLiabilities = model.Round2(bs.CurrentLiabilities.Add(bs.NonCurrentLiabilities))
	bs.Difference = model.Round2(bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.Equity)))
	bs.IsBalanced = bs.Difference.Abs().LessThan(decimal.NewFromInt(1))
	return bs
}

func cashFlow(totals map[model.Category]decimal.Decimal) model.CashFlow {
	cf := model.CashFlow{
		Operating: totals[model.CategoryOperatingCash],
		Investing: totals[model.CategoryInvestingCash],
		Financing: totals[model.CategoryFinancingCash],
	}
	cf.Net = model.Round2(cf.Operating.Add(cf.Investing).Add(cf.Financing))
	return cf
}
