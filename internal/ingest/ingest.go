// Package ingest applies a column mapping to raw spreadsheet rows and
// emits typed transactions and statement rows. Whole-input problems
// (empty input, row cap, missing bank date column) reject with an
// InputError; per-row problems drop the row and are reported through
// Stats and Warnings.
package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/mapping"
	"github.com/ledgerlens/ledgerlens/internal/normalize"
)

// DefaultMaxRows is the per-side row cap when Options.MaxRows is unset.
const DefaultMaxRows = 50000

// Options tunes both row parsers.
type Options struct {
	// DefaultDate substitutes for rows whose date cell is blank.
	// Empty means today. Cells that are present but unparseable drop
	// the row instead.
	DefaultDate string
	// MaxRows caps the input size; 0 means DefaultMaxRows.
	MaxRows int
}

func (o Options) maxRows() int {
	if o.MaxRows > 0 {
		return o.MaxRows
	}
	return DefaultMaxRows
}

func (o Options) defaultDate() string {
	if o.DefaultDate != "" {
		return o.DefaultDate
	}
	return time.Now().UTC().Format(normalize.ISODate)
}

// Stats counts what happened to the source rows. ParsedRows plus the
// dropped counters always equals SourceRows.
type Stats struct {
	SourceRows        int     `json:"sourceRows"`
	ParsedRows        int     `json:"parsedRows"`
	DroppedRows       int     `json:"droppedRows"`
	DroppedDate       int     `json:"droppedDate"`
	DroppedAccount    int     `json:"droppedAccount,omitempty"`
	DroppedAmount     int     `json:"droppedAmount"`
	ReferenceCoverage float64 `json:"referenceCoveragePercent"`
	CategoryCoverage  float64 `json:"categoryCoveragePercent,omitempty"`
}

func checkInput(rowCount, max int) *InputError {
	if rowCount == 0 {
		return errRowsEmpty()
	}
	if rowCount > max {
		return errRowsLimit(rowCount, max)
	}
	return nil
}

// resolveDate canonicalizes a row's date cell. The default stands in for
// a blank cell only; a value that fails every date form yields "" so the
// caller drops the row.
func resolveDate(v any, defaultDate string) string {
	switch x := v.(type) {
	case nil:
		return defaultDate
	case string:
		if strings.TrimSpace(x) == "" {
			return defaultDate
		}
	case time.Time:
		if x.IsZero() {
			return defaultDate
		}
	}
	return normalize.ParseDate(v, "")
}

func cell(row map[string]any, m mapping.Mapping, role mapping.Role) any {
	h, ok := m[role]
	if !ok {
		return nil
	}
	return row[h]
}

// debit/credit keyword heuristics for type cells and signed amounts.
var (
	debitKeywordRe  = regexp.MustCompile(`\b(debit|dr|withdrawal|payment|charge|out)\b`)
	creditKeywordRe = regexp.MustCompile(`\b(credit|cr|deposit|receipt|in)\b`)
)

func typeKeyword(s string) string {
	norm := normalize.Header(s)
	switch {
	case debitKeywordRe.MatchString(norm):
		return "debit"
	case creditKeywordRe.MatchString(norm):
		return "credit"
	}
	return ""
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func dropWarning(count int, reason string) string {
	return fmt.Sprintf("%d row(s) dropped: %s.", count, reason)
}

// openingBalanceRe spots opening-balance narrative on bank rows.
var openingBalanceRe = regexp.MustCompile(`\b(opening|beginning) balance\b|\bbrought forward\b|\bbal b fwd\b|\bb f\b|\bb fwd\b`)

// IsOpeningBalanceText reports whether a description/reference narrative
// marks an opening-balance line. Exported for the matching engine, which
// applies the same test to book entries.
func IsOpeningBalanceText(text string) bool {
	return openingBalanceRe.MatchString(normalize.Header(text))
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
