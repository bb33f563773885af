package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_PlainNumber(t *testing.T) {
	d, ok := ParseAmount("1234.56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", d.String())
}

func TestParseAmount_ThousandsAndCurrency(t *testing.T) {
	cases := map[string]string{
		"$1,234.56":  "1234.56",
		"£ 9,000":    "9000",
		"EUR 12.50":  "12.50",
		"1 234,00":   "123400", // separators are stripped, not interpreted
		"USD -42.00": "-42.00",
	}
	for raw, want := range cases {
		d, ok := ParseAmount(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, want, d.String(), "input %q", raw)
	}
}

func TestParseAmount_ParensAreNegative(t *testing.T) {
	d, ok := ParseAmount("(500.00)")
	require.True(t, ok)
	assert.Equal(t, "-500.00", d.String())
}

func TestParseAmount_Numeric(t *testing.T) {
	d, ok := ParseAmount(250)
	require.True(t, ok)
	assert.Equal(t, "250", d.String())

	d, ok = ParseAmount(12.5)
	require.True(t, ok)
	assert.Equal(t, "12.5", d.String())
}

func TestParseAmount_NothingNumeric(t *testing.T) {
	for _, raw := range []any{nil, "", "   ", "abc", "-", ".", "()", "N/A"} {
		_, ok := ParseAmount(raw)
		assert.False(t, ok, "input %v", raw)
	}
}
