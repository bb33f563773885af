package model

import (
	"github.com/shopspring/decimal"
)

// MatchType identifies the bucket a MatchItem landed in.
type MatchType string

const (
	MatchMatched        MatchType = "matched"
	MatchAmountMismatch MatchType = "amount_mismatch"
	MatchBankOnly       MatchType = "bank_only"
	MatchBookOnly       MatchType = "book_only"
)

// MatchMethod records which matching pass paired the item.
type MatchMethod string

const (
	MethodReference  MatchMethod = "reference"
	MethodAmountDate MatchMethod = "amount_date"
	MethodFuzzy      MatchMethod = "fuzzy"
)

// MatchItem pairs a bank row with a book transaction, or carries the
// unmatched leftover from either side. Every row and transaction in the
// matching pools appears in exactly one MatchItem.
type MatchItem struct {
	Type            MatchType        `json:"type"`
	Method          MatchMethod      `json:"method,omitempty"`
	BankRow         *BankRow         `json:"bankRow,omitempty"`
	BookTransaction *BookTransaction `json:"bookTransaction,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	Variance        decimal.Decimal  `json:"variance"`
}

// Quality is the confidence block of a reconciliation result. The score
// is a heuristic signal, not a statistical guarantee.
type Quality struct {
	BankRowsConsidered    int     `json:"bankRowsConsidered"`
	BookRowsConsidered    int     `json:"bookRowsConsidered"`
	MatchedCount          int     `json:"matchedCount"`
	ReferenceMatched      int     `json:"referenceMatchedCount"`
	AmountDateMatched     int     `json:"matchedByAmountDateFallback"`
	FuzzyMatched          int     `json:"fuzzyMatchedCount"`
	MatchCoverage         float64 `json:"matchCoveragePercent"`
	BankReferenceCoverage float64 `json:"bankReferenceCoveragePercent"`
	BookReferenceCoverage float64 `json:"bookReferenceCoveragePercent"`
	ReliabilityScore      int     `json:"reliabilityScore"`
	Verdict               string  `json:"verdict"` // high | medium | low
}

// ReconciliationResult is the engine's terminal output.
type ReconciliationResult struct {
	StatementStartDate string `json:"statementStartDate"`
	StatementEndDate   string `json:"statementEndDate"`

	BankClosingBalance  decimal.Decimal `json:"bankClosingBalance"`
	BookClosingBalance  decimal.Decimal `json:"bookClosingBalance"`
	AdjustedBankBalance decimal.Decimal `json:"adjustedBankBalance"`
	AdjustedBookBalance decimal.Decimal `json:"adjustedBookBalance"`
	Difference          decimal.Decimal `json:"difference"`
	IsReconciled        bool            `json:"isReconciled"`

	Matched          []MatchItem `json:"matched"`
	AmountMismatched []MatchItem `json:"amountMismatched"`
	BankOnly         []MatchItem `json:"bankOnly"`
	BookOnly         []MatchItem `json:"bookOnly"`

	// Adjustment totals derived from the unmatched partitions.
	DepositsInTransitTotal  decimal.Decimal `json:"depositsInTransitTotal"`
	OutstandingChequesTotal decimal.Decimal `json:"outstandingChequesTotal"`
	BankChargesTotal        decimal.Decimal `json:"bankChargesTotal"`
	BankCreditsTotal        decimal.Decimal `json:"bankCreditsTotal"`

	Quality Quality  `json:"quality"`
	Notes   []string `json:"notes,omitempty"`
}
