package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/mapping"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

var bookHeaders = []string{"Date", "Account", "Category", "Debit", "Credit", "Amount", "Description", "Reference"}

func bookRow(vals ...string) map[string]any {
	row := map[string]any{}
	for i, h := range bookHeaders {
		if i < len(vals) {
			row[h] = vals[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

func TestParseBookRows_EmptyInputRejected(t *testing.T) {
	_, err := ParseBookRows(bookHeaders, nil, nil, Options{})
	var ierr *InputError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, CodeRowsEmpty, ierr.Code)
}

func TestParseBookRows_RowLimitRejected(t *testing.T) {
	rows := make([]map[string]any, 3)
	for i := range rows {
		rows[i] = bookRow("2025-01-01", "Bank", "", "10", "")
	}
	_, err := ParseBookRows(bookHeaders, rows, nil, Options{MaxRows: 2})
	var ierr *InputError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, CodeRowsLimitExceeded, ierr.Code)
	assert.Equal(t, 3, ierr.Received)
	assert.Equal(t, 2, ierr.Max)
}

func TestParseBookRows_DebitColumnPriority(t *testing.T) {
	rows := []map[string]any{bookRow("2025-01-10", "Bank Account", "", "150.00", "", "-999")}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	txn := res.Transactions[0]
	assert.Equal(t, model.TxnDebit, txn.Type)
	assert.Equal(t, "150", txn.Amount.String())
}

func TestParseBookRows_CreditColumn(t *testing.T) {
	rows := []map[string]any{bookRow("2025-01-10", "Bank Account", "", "", "75.50")}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, model.TxnCredit, res.Transactions[0].Type)
	assert.Equal(t, "75.5", res.Transactions[0].Amount.String())
}

func TestParseBookRows_SignedAmountInfersType(t *testing.T) {
	rows := []map[string]any{
		bookRow("2025-01-10", "Bank", "", "", "", "200"),
		bookRow("2025-01-11", "Bank", "", "", "", "-80"),
	}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, model.TxnDebit, res.Transactions[0].Type)
	assert.Equal(t, model.TxnCredit, res.Transactions[1].Type)
	assert.Equal(t, "80", res.Transactions[1].Amount.String())
}

func TestParseBookRows_DropCountingAndConservation(t *testing.T) {
	rows := []map[string]any{
		bookRow("2025-01-10", "Bank", "", "10", ""), // ok
		bookRow("garbage!!", "Bank", "", "10", ""),  // dropped: date
		bookRow("2025-01-10", "", "", "10", ""),     // dropped: account
		bookRow("2025-01-10", "Bank", "", "", ""),   // dropped: amount
	}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{DefaultDate: ""})
	require.NoError(t, err)

	assert.Equal(t, res.Stats.SourceRows, res.Stats.ParsedRows+res.Stats.DroppedRows)
	assert.Equal(t, 1, res.Stats.DroppedDate)
	assert.Equal(t, 1, res.Stats.DroppedAccount)
	assert.Equal(t, 1, res.Stats.DroppedAmount)
	assert.Len(t, res.Warnings, 3)
}

func TestParseBookRows_BlankDateTakesDefaultUnparseableDrops(t *testing.T) {
	rows := []map[string]any{
		bookRow("", "Bank", "", "10", ""),
		bookRow("not a date", "Bank", "", "20", ""),
	}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{DefaultDate: "2025-06-30"})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2025-06-30", res.Transactions[0].Date)
	assert.Equal(t, 1, res.Stats.DroppedDate)
}

func TestParseBookRows_DefaultDateApplied(t *testing.T) {
	rows := []map[string]any{bookRow("", "Bank", "", "10", "")}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{DefaultDate: "2025-06-30"})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2025-06-30", res.Transactions[0].Date)
}

func TestParseBookRows_ReferenceAndCategoryCoverage(t *testing.T) {
	rows := []map[string]any{
		bookRow("2025-01-10", "Bank", "Revenue", "10", "", "", "", "INV-1"),
		bookRow("2025-01-11", "Bank", "", "20", "", "", "", ""),
	}
	res, err := ParseBookRows(bookHeaders, rows, nil, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Stats.ReferenceCoverage, 0.001)
	assert.InDelta(t, 50.0, res.Stats.CategoryCoverage, 0.001)
	assert.Equal(t, "INV-1", res.Transactions[0].Reference)
	assert.Equal(t, model.CategoryRevenue, res.Transactions[0].Category)
}

func TestParseBookRows_ExplicitMappingOverride(t *testing.T) {
	headers := []string{"When", "Ledger Name", "Net"}
	rows := []map[string]any{{
		"When": "2025-02-01", "Ledger Name": "Cash", "Net": "33.00",
	}}
	explicit := mapping.Mapping{
		mapping.RoleDate:    "When",
		mapping.RoleAccount: "Ledger Name",
		mapping.RoleAmount:  "Net",
	}
	res, err := ParseBookRows(headers, rows, explicit, Options{})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Cash", res.Transactions[0].Account)
}

func TestParseBookRows_Idempotent(t *testing.T) {
	rows := []map[string]any{
		bookRow("2025-01-10", "Bank", "", "10", "", "", "coffee", "R1"),
		bookRow("2025-01-11", "Sales", "Revenue", "", "99.99", "", "invoice", "R2"),
	}
	a, err := ParseBookRows(bookHeaders, rows, nil, Options{DefaultDate: "2025-01-01"})
	require.NoError(t, err)
	b, err := ParseBookRows(bookHeaders, rows, nil, Options{DefaultDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
