package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyValueAutoDecimals(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"5", "USD", "$5.00"},
		{"5.5", "USD", "$5.50"},
		{"0.10", "USD", "$0.10"},
		{"0.05", "USD", "$0.05"},
		{"0.008", "USD", "$0.008"},
		{"0.0005", "USD", "$0.0005"},
		{"0", "USD", "$0.00"},
		{"1234.5", "USD", "$1234.50"},
		{"5", "token_credits", "5.00 token credits"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatCurrencyValue(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrencyValueExplicitDecimals(t *testing.T) {
	two := 2
	four := 4

	// Whole amounts collapse to integers only at the default 2 places
	assert.Equal(t, "$5", FormatCurrencyValue(decimal.NewFromInt(5), "USD", CurrencyFormatOptions{Decimals: &two}))
	assert.Equal(t, "$5.0000", FormatCurrencyValue(decimal.NewFromInt(5), "USD", CurrencyFormatOptions{Decimals: &four}))
	assert.Equal(t, "$5.25", FormatCurrencyValue(decimal.RequireFromString("5.25"), "USD", CurrencyFormatOptions{Decimals: &two}))
}

func TestFormatCurrencyValueSuffix(t *testing.T) {
	got := FormatCurrencyValue(decimal.NewFromInt(5), "USD", CurrencyFormatOptions{Suffix: "build"})
	assert.Equal(t, "$5.00 / build", got)

	// A suffix that repeats the currency display name is dropped
	got = FormatCurrencyValue(decimal.NewFromInt(5), "credits", CurrencyFormatOptions{Suffix: "credits"})
	assert.Equal(t, "5.00 credits", got)
}

func TestCurrencyDisplayName(t *testing.T) {
	assert.Equal(t, "token credits", CurrencyDisplayName("token_credits"))
	assert.Equal(t, "USD", CurrencyDisplayName("USD"))
}

func TestParseAmount(t *testing.T) {
	d, ok := ParseAmount(" 5.00 ")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(5)))

	_, ok = ParseAmount("n/a")
	assert.False(t, ok)

	_, ok = ParseAmount("")
	assert.False(t, ok)
}
