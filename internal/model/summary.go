package model

import (
	"github.com/shopspring/decimal"
)

// ProfitAndLoss is the income-statement rollup of a FinancialSummary.
type ProfitAndLoss struct {
	Revenue          decimal.Decimal `json:"revenue"`
	CostOfGoodsSold  decimal.Decimal `json:"costOfGoodsSold"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	OperatingExpense decimal.Decimal `json:"operatingExpense"`
	OtherIncome      decimal.Decimal `json:"otherIncome"`
	OtherExpense     decimal.Decimal `json:"otherExpense"`
	Tax              decimal.Decimal `json:"tax"`
	NetIncome        decimal.Decimal `json:"netIncome"`
}

// BalanceSheet is the position rollup of a FinancialSummary.
type BalanceSheet struct {
	CurrentAssets         decimal.Decimal `json:"currentAssets"`
	NonCurrentAssets      decimal.Decimal `json:"nonCurrentAssets"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities    decimal.Decimal `json:"currentLiabilities"`
	NonCurrentLiabilities decimal.Decimal `json:"nonCurrentLiabilities"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	Equity                decimal.Decimal `json:"equity"`
	Difference            decimal.Decimal `json:"difference"`
	IsBalanced            bool            `json:"isBalanced"`
}

// CashFlow is the cash-movement rollup of a FinancialSummary.
type CashFlow struct {
	Operating decimal.Decimal `json:"operating"`
	Investing decimal.Decimal `json:"investing"`
	Financing decimal.Decimal `json:"financing"`
	Net       decimal.Decimal `json:"net"`
}

// FinancialSummary aggregates categorized book transactions into P&L,
// balance-sheet and cash-flow sections. Independent of reconciliation.
type FinancialSummary struct {
	CategoryTotals map[Category]decimal.Decimal `json:"categoryTotals"`
	ProfitAndLoss  ProfitAndLoss                `json:"profitAndLoss"`
	BalanceSheet   BalanceSheet                 `json:"balanceSheet"`
	CashFlow       CashFlow                     `json:"cashFlow"`
	Warnings       []string                     `json:"warnings,omitempty"`
}
