// Package recon is the reconciliation engine: it pairs bank-statement
// rows against scoped book transactions in three passes, classifies the
// leftovers, adjusts both closing balances, and scores the result. The
// engine is a pure synchronous computation; independent reconciliations
// can run concurrently without locking.
package recon

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ingest"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
	"github.com/ledgerlens/ledgerlens/internal/scope"
)

// Options control the reconciliation window and book scope.
type Options struct {
	// BookAccountScope selects the cash accounts; empty or "auto" infers.
	BookAccountScope string
	// StatementStartDate / StatementEndDate bound the matching window
	// (YYYY-MM-DD, inclusive). Missing bounds are derived from the bank
	// rows themselves.
	StatementStartDate string
	StatementEndDate   string
	// StatementDate acts as the window end when StatementEndDate is
	// absent.
	StatementDate string
}

// Reconcile matches bank rows against book transactions and produces the
// full reconciliation result. Inputs are assumed to be parser output;
// row-level validity is not re-checked.
func Reconcile(bankRows []model.BankRow, bookTxns []model.BookTransaction, opts Options) *model.ReconciliationResult {
	scoped := scope.Infer(bookTxns, opts.BookAccountScope)
	start, end := resolveWindow(bankRows, opts)

	bankWindow := filterBankWindow(bankRows, start, end)
	bankPool := buildBankPool(bankWindow)
	bookPool := buildBookPool(scoped.Transactions, start, end)
	bookUpToEnd := bookTransactionsUpToEnd(scoped.Transactions, end)

	m := newMatcher(bankPool, bookPool)
	m.run()
	bankOnly, bookOnly := m.unmatched()

	res := &model.ReconciliationResult{
		StatementStartDate: start,
		StatementEndDate:   end,
		Matched:            m.matched,
		AmountMismatched:   m.mismatched,
		BankOnly:           bankOnly,
		BookOnly:           bookOnly,
		Notes:              scoped.Notes,
	}

	applyAdjustments(res, bankWindow, bookUpToEnd)
	res.Quality = scoreQuality(res, bankPool, bookPool)
	return res
}

// resolveWindow derives [start, end] from options, falling back to the
// bank rows. Opening-balance rows only seed the start when nothing else
// can.
func resolveWindow(rows []model.BankRow, opts Options) (start, end string) {
	start = opts.StatementStartDate
	if start == "" {
		for _, r := range rows {
			if r.IsOpeningBalance {
				continue
			}
			if start == "" || r.Date < start {
				start = r.Date
			}
		}
	}
	if start == "" {
		for _, r := range rows {
			if start == "" || r.Date < start {
				start = r.Date
			}
		}
	}

	end = opts.StatementEndDate
	if end == "" {
		end = opts.StatementDate
	}
	if end == "" {
		for _, r := range rows {
			if r.Date > end {
				end = r.Date
			}
		}
	}
	return start, end
}

func inWindow(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func filterBankWindow(rows []model.BankRow, start, end string) []model.BankRow {
	out := make([]model.BankRow, 0, len(rows))
	for _, r := range rows {
		if inWindow(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out
}

func buildBankPool(rows []model.BankRow) []bankEntry {
	pool := make([]bankEntry, 0, len(rows))
	for _, r := range rows {
		if r.IsOpeningBalance {
			continue
		}
		amount := r.Movement()
		pool = append(pool, bankEntry{
			row:       r,
			date:      mustDate(r.Date),
			amount:    amount,
			cents:     model.Cents(amount),
			dir:       bankDirection(r),
			narrative: joinNarrative(r.Description, r.Reference),
		})
	}
	return pool
}

func buildBookPool(txns []model.BookTransaction, start, end string) []bookEntry {
	pool := make([]bookEntry, 0, len(txns))
	for _, t := range txns {
		if !inWindow(t.Date, start, end) {
			continue
		}
		if ingest.IsOpeningBalanceText(joinNarrative(t.Description, t.Reference)) {
			continue
		}
		pool = append(pool, bookEntry{
			txn:       t,
			date:      mustDate(t.Date),
			cents:     model.Cents(t.Amount),
			dir:       bookDirection(t),
			narrative: joinNarrative(t.Description, t.Reference, t.Account),
		})
	}
	return pool
}

// bookTransactionsUpToEnd is the wider row set used for the closing
// balance: scoped, bounded by the window end only. Closing balance
// reflects all history up to the cutoff, not just the statement window.
func bookTransactionsUpToEnd(txns []model.BookTransaction, end string) []model.BookTransaction {
	out := make([]model.BookTransaction, 0, len(txns))
	for _, t := range txns {
		if end != "" && t.Date > end {
			continue
		}
		out = append(out, t)
	}
	return out
}

func joinNarrative(parts ...string) string {
	joined := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined != "" {
			joined += " "
		}
		joined += p
	}
	return joined
}

func mustDate(iso string) time.Time {
	t, err := time.Parse(normalize.ISODate, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}
