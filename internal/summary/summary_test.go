package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func txn(category model.Category, txnType model.TxnType, amount string) model.BookTransaction {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return model.BookTransaction{
		Date: "2025-06-30", Account: "test", Category: category,
		Amount: d, Type: txnType,
	}
}

func TestGenerate_ProfitAndLoss(t *testing.T) {
	txns := []model.BookTransaction{
		txn(model.CategoryRevenue, model.TxnCredit, "1000.00"),
		txn(model.CategoryCostOfGoodsSold, model.TxnDebit, "300.00"),
		txn(model.CategoryOperatingExpense, model.TxnDebit, "200.00"),
		txn(model.CategoryTax, model.TxnDebit, "50.00"),
		txn(model.CategoryOtherIncome, model.TxnCredit, "25.00"),
	}
	s := Generate(txns)
	assert.Equal(t, "1000", s.ProfitAndLoss.Revenue.String())
	assert.Equal(t, "700", s.ProfitAndLoss.GrossProfit.String())
	// 1000 + 25 - 300 - 200 - 50 = 475
	assert.Equal(t, "475", s.ProfitAndLoss.NetIncome.String())
}

func TestGenerate_ImpactSignFlips(t *testing.T) {
	// A debit against revenue (a refund) reduces revenue.
	txns := []model.BookTransaction{
		txn(model.CategoryRevenue, model.TxnCredit, "1000.00"),
		txn(model.CategoryRevenue, model.TxnDebit, "100.00"),
	}
	s := Generate(txns)
	assert.Equal(t, "900", s.ProfitAndLoss.Revenue.String())

	// A credit against an asset reduces it.
	txns = []model.BookTransaction{
		txn(model.CategoryCurrentAsset, model.TxnDebit, "500.00"),
		txn(model.CategoryCurrentAsset, model.TxnCredit, "120.00"),
	}
	s = Generate(txns)
	assert.Equal(t, "380", s.BalanceSheet.CurrentAssets.String())
}

func TestGenerate_BalancedBalanceSheet(t *testing.T) {
	txns := []model.BookTransaction{
		txn(model.CategoryCurrentAsset, model.TxnDebit, "600.00"),
		txn(model.CategoryNonCurrentAsset, model.TxnDebit, "400.00"),
		txn(model.CategoryCurrentLiability, model.TxnCredit, "300.00"),
		txn(model.CategoryEquity, model.TxnCredit, "700.00"),
	}
	s := Generate(txns)
	assert.Equal(t, "1000", s.BalanceSheet.TotalAssets.String())
	assert.True(t, s.BalanceSheet.IsBalanced)
	assert.True(t, s.BalanceSheet.Difference.IsZero())
	for _, w := range s.Warnings {
		assert.NotContains(t, w, "balance sheet")
	}
}

func TestGenerate_ImbalanceWarning(t *testing.T) {
	txns := []model.BookTransaction{
		txn(model.CategoryCurrentAsset, model.TxnDebit, "600.00"),
		txn(model.CategoryEquity, model.TxnCredit, "100.00"),
	}
	s := Generate(txns)
	assert.False(t, s.BalanceSheet.IsBalanced)
	require.NotEmpty(t, s.Warnings)
	assert.Contains(t, s.Warnings[0], "balance sheet does not balance")
}

func TestGenerate_CashFlow(t *testing.T) {
	txns := []model.BookTransaction{
		txn(model.CategoryOperatingCash, model.TxnDebit, "150.00"),
		txn(model.CategoryInvestingCash, model.TxnCredit, "40.00"),
		txn(model.CategoryFinancingCash, model.TxnDebit, "90.00"),
	}
	s := Generate(txns)
	assert.Equal(t, "150", s.CashFlow.Operating.String())
	assert.Equal(t, "-40", s.CashFlow.Investing.String())
	assert.Equal(t, "90", s.CashFlow.Financing.String())
	assert.Equal(t, "200", s.CashFlow.Net.String())
}

func TestGenerate_EmptyCashFlowWarning(t *testing.T) {
	txns := []model.BookTransaction{txn(model.CategoryRevenue, model.TxnCredit, "10.00")}
	s := Generate(txns)
	found := false
	for _, w := range s.Warnings {
		if w == "no transactions were categorized into cash-flow buckets; cash flow section is empty" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_RoundingIsStable(t *testing.T) {
	txns := []model.BookTransaction{
		txn(model.CategoryRevenue, model.TxnCredit, "10.005"),
	}
	s := Generate(txns)
	rounded := s.ProfitAndLoss.Revenue
	assert.True(t, rounded.Equal(rounded.Round(2)))
}
