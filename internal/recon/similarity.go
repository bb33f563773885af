package recon

import (
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// stopWords are dropped before narrative comparison; they carry no
// matching signal on bank statements.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "from": true, "to": true,
	"with": true, "bank": true, "payment": true, "deposit": true,
}

// narrativeTokens splits normalized text into significant tokens:
// at least 3 characters, stop-words removed.
func narrativeTokens(s string) map[string]bool {
	tokens := map[string]bool{}
	for _, tok := range strings.Fields(normalize.Header(s)) {
		if len(tok) < 3 || stopWords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

// refTokens extracts alphanumeric tokens of length >= 4 that contain a
// digit — the shape of invoice and cheque numbers embedded in narrative.
func refTokens(s string) map[string]bool {
	tokens := map[string]bool{}
	for _, tok := range strings.Fields(normalize.Header(s)) {
		if len(tok) < 4 {
			continue
		}
		if strings.IndexFunc(tok, func(r rune) bool { return r >= '0' && r <= '9' }) < 0 {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// narrativeSimilar is the fuzzy pass's narrative test: token-overlap
// similarity of at least 0.2, or a shared reference-shaped token, or an
// empty side (missing narrative cannot be penalized — intentional,
// inherited behavior).
func narrativeSimilar(bankText, bookText string) bool {
	if strings.TrimSpace(bankText) == "" || strings.TrimSpace(bookText) == "" {
		return true
	}
	if jaccard(narrativeTokens(bankText), narrativeTokens(bookText)) >= 0.2 {
		return true
	}
	bankRefs := refTokens(bankText)
	for tok := range refTokens(bookText) {
		if bankRefs[tok] {
			return true
		}
	}
	return false
}
