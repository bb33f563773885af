package recon

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// applyAdjustments computes closing and adjusted balances from the match
// partitions:
//
//	adjusted bank = bank closing + deposits in transit - outstanding cheques
//	adjusted book = book closing + unrecorded bank credits - unrecorded bank charges
func applyAdjustments(res *model.ReconciliationResult, bankWindow []model.BankRow, bookUpToEnd []model.BookTransaction) {
	for _, it := range res.BookOnly {
		if it.BookTransaction.Type == model.TxnDebit {
			res.DepositsInTransitTotal = res.DepositsInTransitTotal.Add(it.Amount)
		} else {
			res.OutstandingChequesTotal = res.OutstandingChequesTotal.Add(it.Amount)
		}
	}
	for _, it := range res.BankOnly {
		if it.BankRow.Debit.IsPositive() {
			res.BankChargesTotal = res.BankChargesTotal.Add(it.Amount)
		} else {
			res.BankCreditsTotal = res.BankCreditsTotal.Add(it.Amount)
		}
	}

	res.BankClosingBalance = model.Round2(bankClosingBalance(bankWindow))
	res.BookClosingBalance = model.Round2(bookClosingBalance(bookUpToEnd))

	res.AdjustedBankBalance = model.Round2(res.BankClosingBalance.
		Add(res.DepositsInTransitTotal).
		Sub(res.OutstandingChequesTotal))
	res.AdjustedBookBalance = model.Round2(res.BookClosingBalance.
		Add(res.BankCreditsTotal).
		Sub(res.BankChargesTotal))

	res.DepositsInTransitTotal = model.Round2(res.DepositsInTransitTotal)
	res.OutstandingChequesTotal = model.Round2(res.OutstandingChequesTotal)
	res.BankChargesTotal = model.Round2(res.BankChargesTotal)
	res.BankCreditsTotal = model.Round2(res.BankCreditsTotal)

	res.Difference = model.Round2(res.AdjustedBankBalance.Sub(res.AdjustedBookBalance).Abs())
	res.IsReconciled = res.Difference.LessThan(decimal.NewFromInt(1)) && len(res.AmountMismatched) == 0
}

// bankClosingBalance prefers the most recent in-window row carrying an
// explicit balance (later rows win equal dates); otherwise it falls back
// to net movement: credits minus debits over non-opening rows.
func bankClosingBalance(rows []model.BankRow) decimal.Decimal {
	bestDate := ""
	var best decimal.Decimal
	found := false
	for _, r := range rows {
		if !r.HasBalance {
			continue
		}
		if !found || r.Date >= bestDate {
			best = r.Balance
			bestDate = r.Date
			found = true
		}
	}
	if found {
		return best
	}

	net := decimal.Zero
	for _, r := range rows {
		if r.IsOpeningBalance {
			continue
		}
		net = net.Add(r.Credit).Sub(r.Debit)
	}
	return net
}

// bookClosingBalance is the signed sum over the scoped rows up to the
// window end: debits positive, credits negative.
func bookClosingBalance(txns []model.BookTransaction) decimal.Decimal {
	bal := decimal.Zero
	for _, t := range txns {
		if t.Type == model.TxnDebit {
			bal = bal.Add(t.Amount)
		} else {
			bal = bal.Sub(t.Amount)
		}
	}
	return bal
}

// scoreQuality derives the heuristic reliability block. The score is a
// confidence signal, not a statistical guarantee.
func scoreQuality(res *model.ReconciliationResult, bankPool []bankEntry, bookPool []bookEntry) model.Quality {
	q := model.Quality{
		BankRowsConsidered: len(bankPool),
		BookRowsConsidered: len(bookPool),
		MatchedCount:       len(res.Matched) + len(res.AmountMismatched),
		FuzzyMatched:       len(res.AmountMismatched),
	}
	for _, it := range res.Matched {
		switch it.Method {
		case model.MethodReference:
			q.ReferenceMatched++
		case model.MethodAmountDate:
			q.AmountDateMatched++
		}
	}

	bankRefs, bookRefs := 0, 0
	for _, e := range bankPool {
		if e.row.Reference != "" {
			bankRefs++
		}
	}
	for _, e := range bookPool {
		if e.txn.Reference != "" {
			bookRefs++
		}
	}
	q.BankReferenceCoverage = percentOf(bankRefs, len(bankPool))
	q.BookReferenceCoverage = percentOf(bookRefs, len(bookPool))
	q.MatchCoverage = percentOf(q.MatchedCount, len(bankPool))

	score := 100
	if q.BankReferenceCoverage < 80 {
		score -= 10
	}
	if q.BookReferenceCoverage < 80 {
		score -= 10
	}
	if len(bankPool) > 0 && len(bookPool) > 0 && q.MatchedCount == 0 {
		score -= 25
	}
	if res.Difference.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	q.ReliabilityScore = score

	switch {
	case score >= 80:
		q.Verdict = "high"
	case score >= 55:
		q.Verdict = "medium"
	default:
		q.Verdict = "low"
	}
	return q
}

func percentOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
