// Package mapping guesses which column of an arbitrary tabular export
// plays which semantic role. Detection scans headers in file order and the
// first header matching a role's pattern claims it; a claimed role is
// never overwritten. The bank balance column is the one exception: every
// balance-looking header is scored and the best one wins.
package mapping

import (
	"regexp"

	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// Role names a semantic column.
type Role string

const (
	RoleDate        Role = "date"
	RoleAccount     Role = "account"
	RoleCategory    Role = "category"
	RoleDebit       Role = "debit"
	RoleCredit      Role = "credit"
	RoleAmount      Role = "amount"
	RoleType        Role = "type"
	RoleDescription Role = "description"
	RoleReference   Role = "reference"
	RoleBalance     Role = "balance"
	RoleSection     Role = "section"
)

// Mapping assigns an original header name to each detected role.
type Mapping map[Role]string

// rolePatterns is evaluated per role against normalized header text.
// Slice order fixes the role precedence when one header could fill
// several roles.
var rolePatterns = []struct {
	role Role
	re   *regexp.Regexp
}{
	{RoleDate, regexp.MustCompile(`\bdate\b|^dt$|\bposted\b`)},
	{RoleDebit, regexp.MustCompile(`\bdebits?\b|\bdr\b|withdrawal|money out|paid out|outflow`)},
	{RoleCredit, regexp.MustCompile(`\bcredits?\b|\bcr\b|\bdeposits?\b|money in|paid in|inflow`)},
	{RoleAmount, regexp.MustCompile(`\bamounts?\b|\bamt\b|\bvalue\b|\btotal\b`)},
	{RoleType, regexp.MustCompile(`\btype\b|\bdr cr\b|\bd c\b|\bside\b`)},
	{RoleAccount, regexp.MustCompile(`\baccounts?\b|\bacct\b|\bledger\b`)},
	{RoleCategory, regexp.MustCompile(`\bcategor(y|ies)\b|\bclassification\b|\bclass\b`)},
	{RoleReference, regexp.MustCompile(`\bref(erence)?\b|\bcheque\b|\bcheck (no|num)\b|\breceipt\b|\bvoucher\b|\binvoice\b|\btransaction id\b|\butr\b`)},
	{RoleDescription, regexp.MustCompile(`\bdesc(ription)?\b|\bnarrati(ve|on)\b|\bdetails?\b|\bparticulars?\b|\bmemo\b|\bpayee\b|\bremarks?\b`)},
	{RoleBalance, balanceRe},
	{RoleSection, regexp.MustCompile(`\bsection\b|\bstatement\b|\bsheet\b|\bgroup\b`)},
}

var balanceRe = regexp.MustCompile(`\bbalance\b|\bbal\b|running total`)

// balance-header scoring: explicit closing/running language boosts a
// candidate, opening language disqualifies it from being the running
// balance column.
var (
	balanceBoostRe   = regexp.MustCompile(`\b(running|closing|ending|available|ledger|current)\b`)
	balancePenaltyRe = regexp.MustCompile(`\b(opening|beginning)\b|brought forward`)
)

// DetectBook guesses the column mapping for a general-ledger export.
func DetectBook(headers []string) Mapping {
	return detect(headers, false)
}

// DetectBank guesses the column mapping for a bank-statement export.
// Balance detection is a global best-of over all balance-like headers
// rather than first-match.
func DetectBank(headers []string) Mapping {
	return detect(headers, true)
}

func detect(headers []string, scoreBalance bool) Mapping {
	m := Mapping{}
	for _, h := range headers {
		norm := normalize.Header(h)
		if norm == "" {
			continue
		}
		for _, rp := range rolePatterns {
			if scoreBalance && rp.role == RoleBalance {
				continue
			}
			if _, taken := m[rp.role]; taken {
				continue
			}
			if rp.re.MatchString(norm) {
				m[rp.role] = h
			}
		}
	}

	if scoreBalance {
		if h, ok := bestBalanceHeader(headers); ok {
			m[RoleBalance] = h
		}
	}
	return m
}

func bestBalanceHeader(headers []string) (string, bool) {
	best := ""
	bestScore := 0
	for _, h := range headers {
		norm := normalize.Header(h)
		if !balanceRe.MatchString(norm) {
			continue
		}
		score := 1
		if balanceBoostRe.MatchString(norm) {
			score += 2
		}
		if balancePenaltyRe.MatchString(norm) {
			score -= 2
		}
		if score > bestScore {
			best = h
			bestScore = score
		}
	}
	return best, bestScore > 0
}

// Merge overlays explicit caller-supplied role assignments onto a
// detected mapping. Explicit entries always win.
func Merge(detected, explicit Mapping) Mapping {
	merged := Mapping{}
	for role, h := range detected {
		merged[role] = h
	}
	for role, h := range explicit {
		if h != "" {
			merged[role] = h
		}
	}
	return merged
}
