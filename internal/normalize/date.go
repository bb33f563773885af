package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical date layout used throughout the engine.
const ISODate = "2006-01-02"

// Spreadsheet serial dates count days from the Excel epoch. Serials are
// only trusted inside a window that covers roughly 1927-2064; anything
// outside is more likely a reference number than a date.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	serialMin = 10000
	serialMax = 60000
)

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})$`)
	serialRe    = regexp.MustCompile(`^\d{5}$`)
)

// textLayouts are tried, in order, when the structured forms fail.
var textLayouts = []string{
	"2006/01/02",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"January 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

// ParseDate converts native dates, spreadsheet serial numbers, ISO dates
// and ambiguous D/M/Y vs M/D/Y text into canonical YYYY-MM-DD. Ambiguous
// slash dates are disambiguated by whichever component exceeds 12; when
// neither does, month-first wins. Falls back to defaultDate, then to the
// empty string. Never fails.
func ParseDate(v any, defaultDate string) string {
	switch x := v.(type) {
	case nil:
		return defaultDate
	case time.Time:
		if x.IsZero() {
			return defaultDate
		}
		return x.Format(ISODate)
	case float64:
		if s, ok := fromSerial(x); ok {
			return s
		}
		return defaultDate
	case int:
		if s, ok := fromSerial(float64(x)); ok {
			return s
		}
		return defaultDate
	case int64:
		if s, ok := fromSerial(float64(x)); ok {
			return s
		}
		return defaultDate
	case string:
		if s, ok := parseDateString(x); ok {
			return s
		}
		return defaultDate
	default:
		return defaultDate
	}
}

func fromSerial(serial float64) (string, bool) {
	if serial < serialMin || serial >= serialMax {
		return "", false
	}
	return excelEpoch.AddDate(0, 0, int(serial)).Format(ISODate), true
}

func parseDateString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	// A bare 5-digit string inside the serial window is a spreadsheet
	// serial exported as text.
	if serialRe.MatchString(s) {
		n, _ := strconv.Atoi(s)
		if iso, ok := fromSerial(float64(n)); ok {
			return iso, true
		}
	}

	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		year = expandYear(year)

		// Whichever component exceeds 12 must be the day.
		switch {
		case a > 12:
			return makeDate(year, b, a)
		case b > 12:
			return makeDate(year, a, b)
		default:
			return makeDate(year, a, b) // month-first
		}
	}

	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODate), true
		}
	}
	return "", false
}

func expandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y < 70 {
		return 2000 + y
	}
	return 1900 + y
}

func makeDate(year, month, day int) (string, bool) {
	if year < 1000 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject that.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(ISODate), true
}
