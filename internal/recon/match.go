package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Matching tolerances. Pass 1 is the high-confidence reference match,
// pass 2 the tight amount+date fallback, pass 3 the flagged fuzzy pass.
const (
	refMatchMaxDays      = 10   // pass 1: calendar-day ceiling around a reference hit
	fallbackMaxBizDays   = 2    // pass 2: business-day distance
	fallbackCentsSlack   = 1    // pass 2: amount tolerance in minor units
	fuzzyMaxDays         = 7    // pass 3: calendar-day distance
	fuzzyAmountTolerance = 0.05 // pass 3: relative amount tolerance
)

type direction int

const (
	dirNone direction = iota
	dirIn
	dirOut
)

// bankDirection maps a row to the cash-account perspective: credits are
// money in, debits money out; when both sides are present the larger
// one decides (credit wins ties).
func bankDirection(r model.BankRow) direction {
	d, c := r.Debit.IsPositive(), r.Credit.IsPositive()
	switch {
	case c && !d:
		return dirIn
	case d && !c:
		return dirOut
	case d && c:
		if r.Credit.GreaterThanOrEqual(r.Debit) {
			return dirIn
		}
		return dirOut
	}
	return dirNone
}

// bookDirection: a debit to a cash account is money coming in.
func bookDirection(t model.BookTransaction) direction {
	switch t.Type {
	case model.TxnDebit:
		return dirIn
	case model.TxnCredit:
		return dirOut
	}
	return dirNone
}

type bankEntry struct {
	row       model.BankRow
	date      time.Time
	amount    decimal.Decimal
	cents     int64
	dir       direction
	narrative string
}

type bookEntry struct {
	txn       model.BookTransaction
	date      time.Time
	cents     int64
	dir       direction
	narrative string
}

// matcher holds the two immutable pools and the consumed-tracking sets
// for one reconciliation call.
type matcher struct {
	bank []bankEntry
	book []bookEntry

	usedBank map[string]bool // bank row IDs
	usedBook map[int]bool    // book pool indices

	matched    []model.MatchItem
	mismatched []model.MatchItem
}

func newMatcher(bank []bankEntry, book []bookEntry) *matcher {
	return &matcher{
		bank:     bank,
		book:     book,
		usedBank: make(map[string]bool, len(bank)),
		usedBook: make(map[int]bool, len(book)),
	}
}

func (m *matcher) run() {
	m.passReference()
	m.passAmountDate()
	m.passFuzzy()
}

type refKey struct {
	ref   string
	cents int64
	dir   direction
}

// passReference pairs rows sharing (reference, amount, direction),
// preferring the candidate nearest in date, capped at refMatchMaxDays.
// Ties keep the earliest pool entry.
func (m *matcher) passReference() {
	index := make(map[refKey][]int)
	for i, e := range m.book {
		if e.txn.Reference == "" || e.cents <= 0 || e.dir == dirNone {
			continue
		}
		k := refKey{ref: e.txn.Reference, cents: e.cents, dir: e.dir}
		index[k] = append(index[k], i)
	}

	for bi := range m.bank {
		e := &m.bank[bi]
		if e.row.Reference == "" || e.cents <= 0 || e.dir == dirNone {
			continue
		}
		k := refKey{ref: e.row.Reference, cents: e.cents, dir: e.dir}

		best := -1
		bestDays := refMatchMaxDays + 1
		for _, idx := range index[k] {
			if m.usedBook[idx] {
				continue
			}
			days := calendarDays(e.date, m.book[idx].date)
			if days > refMatchMaxDays {
				continue
			}
			if days < bestDays {
				best = idx
				bestDays = days
			}
		}
		if best < 0 {
			continue
		}

		m.consume(bi, best, model.MethodReference)
	}
}

// passAmountDate pairs leftovers on direction + amount (within one minor
// unit) + business-day distance, requiring no explicit reference
// conflict. First qualifying pool entry wins.
func (m *matcher) passAmountDate() {
	for bi := range m.bank {
		e := &m.bank[bi]
		if m.usedBank[e.row.ID] || e.dir == dirNone || e.cents <= 0 {
			continue
		}
		for idx := range m.book {
			b := &m.book[idx]
			if m.usedBook[idx] || b.dir != e.dir {
				continue
			}
			if absInt64(e.cents-b.cents) > fallbackCentsSlack {
				continue
			}
			if referenceConflict(e.row.Reference, b.txn.Reference) {
				continue
			}
			if businessDays(e.date, b.date) > fallbackMaxBizDays {
				continue
			}
			m.consume(bi, idx, model.MethodAmountDate)
			break
		}
	}
}

// passFuzzy is the last resort: relaxed amount (5%) and date (7 calendar
// days) tolerances, but a narrative similarity requirement. Its hits are
// always recorded as amount_mismatch so consumers know to review them.
func (m *matcher) passFuzzy() {
	tolerance := decimal.NewFromFloat(fuzzyAmountTolerance)
	for bi := range m.bank {
		e := &m.bank[bi]
		if m.usedBank[e.row.ID] || e.dir == dirNone || e.cents <= 0 {
			continue
		}
		maxDelta := e.amount.Mul(tolerance)
		for idx := range m.book {
			b := &m.book[idx]
			if m.usedBook[idx] || b.dir != e.dir {
				continue
			}
			if referenceConflict(e.row.Reference, b.txn.Reference) {
				continue
			}
			if e.amount.Sub(b.txn.Amount).Abs().GreaterThan(maxDelta) {
				continue
			}
			if calendarDays(e.date, b.date) > fuzzyMaxDays {
				continue
			}
			if !narrativeSimilar(e.narrative, b.narrative) {
				continue
			}

			m.usedBank[e.row.ID] = true
			m.usedBook[idx] = true
			m.mismatched = append(m.mismatched, model.MatchItem{
				Type:            model.MatchAmountMismatch,
				Method:          model.MethodFuzzy,
				BankRow:         &e.row,
				BookTransaction: &b.txn,
				Amount:          model.Round2(e.amount),
				Variance:        model.Round2(e.amount.Sub(b.txn.Amount).Abs()),
			})
			break
		}
	}
}

func (m *matcher) consume(bankIdx, bookIdx int, method model.MatchMethod) {
	e := &m.bank[bankIdx]
	b := &m.book[bookIdx]
	m.usedBank[e.row.ID] = true
	m.usedBook[bookIdx] = true
	m.matched = append(m.matched, model.MatchItem{
		Type:            model.MatchMatched,
		Method:          method,
		BankRow:         &e.row,
		BookTransaction: &b.txn,
		Amount:          model.Round2(e.amount),
		Variance:        decimal.Zero,
	})
}

// unmatched partitions whatever neither pass consumed.
func (m *matcher) unmatched() (bankOnly, bookOnly []model.MatchItem) {
	for bi := range m.bank {
		e := &m.bank[bi]
		if m.usedBank[e.row.ID] {
			continue
		}
		bankOnly = append(bankOnly, model.MatchItem{
			Type:     model.MatchBankOnly,
			BankRow:  &e.row,
			Amount:   model.Round2(e.row.Movement()),
			Variance: decimal.Zero,
		})
	}
	for idx := range m.book {
		if m.usedBook[idx] {
			continue
		}
		b := &m.book[idx]
		bookOnly = append(bookOnly, model.MatchItem{
			Type:            model.MatchBookOnly,
			BookTransaction: &b.txn,
			Amount:          model.Round2(b.txn.Amount.Abs()),
			Variance:        decimal.Zero,
		})
	}
	return bankOnly, bookOnly
}

func referenceConflict(bankRef, bookRef string) bool {
	return bankRef != "" && bookRef != "" && bankRef != bookRef
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// calendarDays is the absolute day distance between two dates.
func calendarDays(a, b time.Time) int {
	d := int(b.Sub(a).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

// businessDays walks calendar days between a and b counting only Mon-Fri.
// Holidays are not modeled.
func businessDays(a, b time.Time) int {
	if a.After(b) {
		a, b = b, a
	}
	n := 0
	for d := a.AddDate(0, 0, 1); !d.After(b); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}
