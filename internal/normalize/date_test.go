package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_ISO(t *testing.T) {
	assert.Equal(t, "2026-01-10", ParseDate("2026-01-10", ""))
	assert.Equal(t, "2026-01-05", ParseDate("2026-1-5", ""))
}

func TestParseDate_NativeTime(t *testing.T) {
	d := time.Date(2025, 7, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-04", ParseDate(d, ""))
}

func TestParseDate_ExcelSerial(t *testing.T) {
	// Serial 45658 = 2025-01-01 from the 1899-12-30 epoch.
	assert.Equal(t, "2025-01-01", ParseDate(45658.0, ""))
	assert.Equal(t, "2025-01-01", ParseDate(45658, ""))
	assert.Equal(t, "2025-01-01", ParseDate("45658", ""))
}

func TestParseDate_SerialOutOfRange(t *testing.T) {
	assert.Equal(t, "fallback", ParseDate(9999.0, "fallback"))
	assert.Equal(t, "fallback", ParseDate(70000.0, "fallback"))
}

func TestParseDate_DayFirstWhenDayExceeds12(t *testing.T) {
	assert.Equal(t, "2025-03-25", ParseDate("25/03/2025", ""))
}

func TestParseDate_MonthFirstWhenSecondExceeds12(t *testing.T) {
	assert.Equal(t, "2025-03-25", ParseDate("03/25/2025", ""))
}

func TestParseDate_AmbiguousDefaultsMonthFirst(t *testing.T) {
	assert.Equal(t, "2025-03-04", ParseDate("3/4/2025", ""))
}

func TestParseDate_TwoDigitYear(t *testing.T) {
	assert.Equal(t, "2025-01-02", ParseDate("1/2/25", ""))
	assert.Equal(t, "1999-01-02", ParseDate("1/2/99", ""))
}

func TestParseDate_TextualFallback(t *testing.T) {
	assert.Equal(t, "2025-06-15", ParseDate("15 Jun 2025", ""))
	assert.Equal(t, "2025-06-15", ParseDate("Jun 15, 2025", ""))
}

func TestParseDate_DefaultAndEmpty(t *testing.T) {
	assert.Equal(t, "2025-01-01", ParseDate("not a date", "2025-01-01"))
	assert.Equal(t, "", ParseDate("not a date", ""))
	assert.Equal(t, "", ParseDate(nil, ""))
}

func TestParseDate_InvalidCalendarDate(t *testing.T) {
	assert.Equal(t, "", ParseDate("2025-02-30", ""))
	assert.Equal(t, "", ParseDate("31/31/2025", ""))
}
