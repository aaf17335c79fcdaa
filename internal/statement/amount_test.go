package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_EmptyIsAbsent(t *testing.T) {
	d, err := parseAmount("")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestParseAmount_StripsDecoration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234.56 CR", "1234.56"},
		{"$900.00", "900"},
		{"S$ 12,000.00", "12000"},
		{"5", "5"},
		{"0.01", "0.01"},
	}
	for _, tt := range tests {
		d, err := parseAmount(tt.in)
		require.NoError(t, err, tt.in)
		require.NotNil(t, d, tt.in)
		assert.True(t, d.Equal(decimal.RequireFromString(tt.want)), "%s -> %s, want %s", tt.in, d, tt.want)
	}
}

func TestParseAmount_NoDigits(t *testing.T) {
	_, err := parseAmount("CR")
	assert.Error(t, err)
}

func TestParseAmount_MalformedResidue(t *testing.T) {
	_, err := parseAmount("1.2.3")
	assert.Error(t, err)
}

func TestParseAmount_ExactDecimal(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	a, err := parseAmount("0.10")
	require.NoError(t, err)
	b, err := parseAmount("0.20")
	require.NoError(t, err)
	assert.True(t, a.Add(*b).Equal(decimal.RequireFromString("0.3")))
}
