package ingest

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/mapping"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// BankResult is the output of ParseBankRows.
type BankResult struct {
	Rows        []model.BankRow `json:"rows"`
	Warnings    []string        `json:"warnings,omitempty"`
	MappingUsed mapping.Mapping `json:"mappingUsed"`
	Stats       Stats           `json:"stats"`
}

// ParseBankRows converts bank-statement rows into BankRows. A date column
// is mandatory (explicit or detected): a statement without dates cannot
// be reconciled. Rows with zero debit and zero credit are dropped.
func ParseBankRows(headers []string, rows []map[string]any, explicit mapping.Mapping, opts Options) (*BankResult, error) {
	if err := checkInput(len(rows), opts.maxRows()); err != nil {
		return nil, err
	}

	m := mapping.Merge(mapping.DetectBank(headers), explicit)
	if _, ok := m[mapping.RoleDate]; !ok {
		return nil, errBankDateMissing()
	}
	defaultDate := opts.defaultDate()

	res := &BankResult{MappingUsed: m}
	res.Stats.SourceRows = len(rows)

	withReference := 0

	for i, row := range rows {
		date := resolveDate(cell(row, m, mapping.RoleDate), defaultDate)
		if date == "" {
			res.Stats.DroppedDate++
			continue
		}

		debit, credit := resolveBankMovement(row, m)
		if debit.IsZero() && credit.IsZero() {
			res.Stats.DroppedAmount++
			continue
		}

		description := normalize.String(cell(row, m, mapping.RoleDescription))
		reference := normalize.Reference(cell(row, m, mapping.RoleReference))
		if reference != "" {
			withReference++
		}

		bankRow := model.BankRow{
			ID:               fmt.Sprintf("bank-%06d", i+1),
			Date:             date,
			Description:      description,
			Reference:        reference,
			Debit:            model.Round2(debit),
			Credit:           model.Round2(credit),
			IsOpeningBalance: IsOpeningBalanceText(joinNonEmpty(description, reference)),
			RawRow:           i + 1,
		}

		if bal, ok := normalize.ParseAmount(cell(row, m, mapping.RoleBalance)); ok {
			bankRow.Balance = model.Round2(bal)
			bankRow.HasBalance = true
		}

		res.Rows = append(res.Rows, bankRow)
	}

	res.Stats.ParsedRows = len(res.Rows)
	res.Stats.DroppedRows = res.Stats.DroppedDate + res.Stats.DroppedAmount
	res.Stats.ReferenceCoverage = percent(withReference, res.Stats.ParsedRows)

	if res.Stats.DroppedDate > 0 {
		res.Warnings = append(res.Warnings, dropWarning(res.Stats.DroppedDate, "date could not be parsed"))
	}
	if res.Stats.DroppedAmount > 0 {
		res.Warnings = append(res.Warnings, dropWarning(res.Stats.DroppedAmount, "zero debit and zero credit"))
	}

	return res, nil
}

// resolveBankMovement reads the debit/credit columns directly, falling
// back to a signed amount column. A positive amount is a credit (money
// arriving at the bank account) unless the type cell says otherwise.
func resolveBankMovement(row map[string]any, m mapping.Mapping) (debit, credit decimal.Decimal) {
	d, dok := normalize.ParseAmount(cell(row, m, mapping.RoleDebit))
	c, cok := normalize.ParseAmount(cell(row, m, mapping.RoleCredit))
	if dok && d.IsPositive() {
		debit = d
	}
	if cok && c.IsPositive() {
		credit = c
	}
	if !debit.IsZero() || !credit.IsZero() {
		return debit, credit
	}

	amt, ok := normalize.ParseAmount(cell(row, m, mapping.RoleAmount))
	if !ok || amt.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	switch typeKeyword(normalize.String(cell(row, m, mapping.RoleType))) {
	case "debit":
		return amt.Abs(), decimal.Zero
	case "credit":
		return decimal.Zero, amt.Abs()
	}

	if amt.IsNegative() {
		return amt.Abs(), decimal.Zero
	}
	return decimal.Zero, amt
}
