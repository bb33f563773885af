package ingest

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/mapping"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// BookResult is the output of ParseBookRows.
type BookResult struct {
	Transactions []model.BookTransaction `json:"transactions"`
	Warnings     []string                `json:"warnings,omitempty"`
	MappingUsed  mapping.Mapping         `json:"mappingUsed"`
	Stats        Stats                   `json:"stats"`
}

// ParseBookRows converts general-ledger rows into BookTransactions.
// Rows with an unusable date, blank account, or no usable amount are
// dropped and counted; the whole input is rejected only when empty or
// over the row cap.
func ParseBookRows(headers []string, rows []map[string]any, explicit mapping.Mapping, opts Options) (*BookResult, error) {
	if err := checkInput(len(rows), opts.maxRows()); err != nil {
		return nil, err
	}

	m := mapping.Merge(mapping.DetectBook(headers), explicit)
	defaultDate := opts.defaultDate()

	res := &BookResult{MappingUsed: m}
	res.Stats.SourceRows = len(rows)

	withReference := 0
	withCategory := 0

	for i, row := range rows {
		date := resolveDate(cell(row, m, mapping.RoleDate), defaultDate)
		if date == "" {
			res.Stats.DroppedDate++
			continue
		}

		account := normalize.String(cell(row, m, mapping.RoleAccount))
		if account == "" {
			res.Stats.DroppedAccount++
			continue
		}

		amount, txnType, ok := resolveBookAmount(row, m)
		if !ok {
			res.Stats.DroppedAmount++
			continue
		}

		description := normalize.String(cell(row, m, mapping.RoleDescription))
		reference := normalize.Reference(cell(row, m, mapping.RoleReference))
		categoryCell := normalize.String(cell(row, m, mapping.RoleCategory))
		section := normalize.String(cell(row, m, mapping.RoleSection))

		if reference != "" {
			withReference++
		}
		if categoryCell != "" {
			withCategory++
		}

		res.Transactions = append(res.Transactions, model.BookTransaction{
			Date:        date,
			Account:     account,
			Category:    normalize.Category(categoryCell, account, description, section),
			Amount:      model.Round2(amount),
			Type:        txnType,
			Description: description,
			Reference:   reference,
			OriginalRow: i + 1,
		})
	}

	res.Stats.ParsedRows = len(res.Transactions)
	res.Stats.DroppedRows = res.Stats.DroppedDate + res.Stats.DroppedAccount + res.Stats.DroppedAmount
	res.Stats.ReferenceCoverage = percent(withReference, res.Stats.ParsedRows)
	res.Stats.CategoryCoverage = percent(withCategory, res.Stats.ParsedRows)

	if res.Stats.DroppedDate > 0 {
		res.Warnings = append(res.Warnings, dropWarning(res.Stats.DroppedDate, "date could not be parsed"))
	}
	if res.Stats.DroppedAccount > 0 {
		res.Warnings = append(res.Warnings, dropWarning(res.Stats.DroppedAccount, "account name was blank"))
	}
	if res.Stats.DroppedAmount > 0 {
		res.Warnings = append(res.Warnings, dropWarning(res.Stats.DroppedAmount, "no usable amount found"))
	}

	return res, nil
}

// resolveBookAmount resolves the amount and side of a book row with the
// priority: explicit debit column, explicit credit column, then a signed
// amount column whose direction comes from the type cell or the sign.
func resolveBookAmount(row map[string]any, m mapping.Mapping) (decimal.Decimal, model.TxnType, bool) {
	if d, ok := normalize.ParseAmount(cell(row, m, mapping.RoleDebit)); ok && d.IsPositive() {
		return d, model.TxnDebit, true
	}
	if c, ok := normalize.ParseAmount(cell(row, m, mapping.RoleCredit)); ok && c.IsPositive() {
		return c, model.TxnCredit, true
	}

	amt, ok := normalize.ParseAmount(cell(row, m, mapping.RoleAmount))
	if !ok || amt.IsZero() {
		return decimal.Zero, "", false
	}

	switch typeKeyword(normalize.String(cell(row, m, mapping.RoleType))) {
	case "debit":
		return amt.Abs(), model.TxnDebit, true
	case "credit":
		return amt.Abs(), model.TxnCredit, true
	}

	// No keyword: sign decides. Positive amounts are debits to the
	// account (money in, from the ledger's own perspective).
	if amt.IsNegative() {
		return amt.Abs(), model.TxnCredit, true
	}
	return amt, model.TxnDebit, true
}
