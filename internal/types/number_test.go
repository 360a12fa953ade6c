package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCompactNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"3", "3"},
		{"2.5", "2.5"},
		{"2.55", "2.6"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"999999", "999,999"},
		{"1000000", "1M"},
		{"2500000", "2.5M"},
		{"10000", "10,000"},
		{"1200000000", "1.2G"},
		{"1000000000000", "1T"},
		{"-1234", "-1,234"},
		{"-2500000", "-2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatCompactNumber(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCompactNumberFromString(t *testing.T) {
	assert.Equal(t, "1,000", FormatCompactNumberFromString("1000"))
	assert.Equal(t, "2.5M", FormatCompactNumberFromString("2500000"))

	// Non-numeric provider values pass through unchanged
	assert.Equal(t, "Included", FormatCompactNumberFromString("Included"))
}
