// Package scope selects the book accounts that represent cash/bank
// activity for reconciliation. Selection is a heuristic: misses are
// reported as notes on the result, never as errors.
package scope

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// Auto asks the inferencer to pick cash accounts itself.
const Auto = "auto"

// Result is the scoped transaction set plus how it was chosen.
type Result struct {
	Transactions []model.BookTransaction
	Accounts     []string // distinct account names in scope, sorted
	Notes        []string
}

var cashAccountRe = regexp.MustCompile(`\b(cash|bank|checking|cheque|savings?|petty cash|current account|money market)\b`)

// Infer filters book transactions to the reconciliation scope. An
// explicit non-auto scope matches on normalized account name; auto mode
// tries cash/bank name keywords, then falls back to cash-flagged
// categories.
func Infer(txns []model.BookTransaction, requested string) Result {
	if requested != "" && requested != Auto {
		return explicitScope(txns, requested)
	}
	return autoScope(txns)
}

func explicitScope(txns []model.BookTransaction, requested string) Result {
	want := normalize.Header(requested)
	var res Result
	for _, t := range txns {
		if normalize.Header(t.Account) == want {
			res.Transactions = append(res.Transactions, t)
		}
	}
	if len(res.Transactions) == 0 {
		res.Notes = append(res.Notes,
			fmt.Sprintf("no book transactions matched the requested account scope %q", requested))
		return res
	}
	res.Accounts = distinctAccounts(res.Transactions)
	return res
}

func autoScope(txns []model.BookTransaction) Result {
	var res Result

	for _, t := range txns {
		if cashAccountRe.MatchString(normalize.Header(t.Account)) {
			res.Transactions = append(res.Transactions, t)
		}
	}

	if len(res.Transactions) == 0 {
		for _, t := range txns {
			if isCashByCategory(t) {
				res.Transactions = append(res.Transactions, t)
			}
		}
		if len(res.Transactions) > 0 {
			res.Notes = append(res.Notes,
				"cash scope inferred from transaction categories; no account name matched a bank/cash keyword")
		}
	}

	if len(res.Transactions) == 0 {
		res.Notes = append(res.Notes,
			"no cash or bank accounts could be identified in the book data; reconciliation confidence is low")
		return res
	}

	res.Accounts = distinctAccounts(res.Transactions)
	return res
}

func isCashByCategory(t model.BookTransaction) bool {
	switch t.Category {
	case model.CategoryOperatingCash:
		return true
	case model.CategoryCurrentAsset:
		return cashAccountRe.MatchString(normalize.Header(t.Account + " " + t.Description))
	}
	return false
}

func distinctAccounts(txns []model.BookTransaction) []string {
	seen := map[string]bool{}
	var names []string
	for _, t := range txns {
		if !seen[t.Account] {
			seen[t.Account] = true
			names = append(names, t.Account)
		}
	}
	sort.Strings(names)
	return names
}
