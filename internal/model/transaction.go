package model

import (
	"github.com/shopspring/decimal"
)

// TxnType is the side of a book entry.
type TxnType string

const (
	TxnDebit  TxnType = "debit"
	TxnCredit TxnType = "credit"
)

// BookTransaction is one general-ledger entry produced by the book row
// parser. Amount is always positive; Type carries the direction.
type BookTransaction struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Account     string          `json:"account"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TxnType         `json:"type"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty"` // normalized
	OriginalRow int             `json:"originalRow"`
}

// BankRow is one parsed bank-statement line. At least one of Debit/Credit
// is positive; rows failing that are dropped by the parser.
type BankRow struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"` // YYYY-MM-DD
	Description      string          `json:"description,omitempty"`
	Reference        string          `json:"reference,omitempty"` // normalized
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Balance          decimal.Decimal `json:"balance"`
	HasBalance       bool            `json:"hasBalance"`
	IsOpeningBalance bool            `json:"isOpeningBalance"`
	RawRow           int             `json:"rawRow"`
}

// Movement returns the row's cash movement: the debit if positive,
// otherwise the credit.
func (r BankRow) Movement() decimal.Decimal {
	if r.Debit.IsPositive() {
		return r.Debit
	}
	return r.Credit
}
