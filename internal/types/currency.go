package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyFormatOptions tune FormatCurrencyValue
type CurrencyFormatOptions struct {
	// Decimals forces a fixed decimal place count instead of
	// auto detection
	Decimals *int

	// Suffix is an item-name suffix rendered as " / <suffix>"
	// ex "$5.00 / build". Omitted when it duplicates the currency
	// display name.
	Suffix string
}

// CurrencyDisplayName converts a provider currency code to its display
// name ex "token_credits" -> "token credits"
func CurrencyDisplayName(currency string) string {
	return strings.ReplaceAll(currency, "_", " ")
}

// ParseAmount parses a provider amount which may be a numeric string
// ex "5.00". The second return is false for non-numeric input.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatCurrencyValue renders an amount in a currency for display.
// USD renders with a "$" prefix, every other currency with the display
// name as a suffix ex "5 token credits".
//
// Decimal places default to auto detection by magnitude: 2 for amounts
// >= 1 (and for exactly zero), 3 for [0.1, 1), 4 for [0.01, 0.1),
// 5 for [0.001, 0.01) and 6 below that, trimming trailing zeros down
// to a minimum of 2 places. With an explicit decimal count, whole
// amounts collapse to an integer string only when the count is 2.
func FormatCurrencyValue(amount decimal.Decimal, currency string, opts ...CurrencyFormatOptions) string {
	var opt CurrencyFormatOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	var num string
	if opt.Decimals != nil {
		num = amount.StringFixed(int32(*opt.Decimals))
		if amount.IsInteger() && *opt.Decimals == 2 {
			num = amount.Truncate(0).String()
		}
	} else {
		num = trimTrailingZeros(amount.StringFixed(autoDecimals(amount)))
	}

	displayName := CurrencyDisplayName(currency)

	var out string
	if strings.EqualFold(currency, "USD") {
		out = "$" + num
	} else {
		out = num + " " + displayName
	}

	if opt.Suffix != "" && !strings.EqualFold(opt.Suffix, displayName) {
		out += " / " + opt.Suffix
	}
	return out
}

func autoDecimals(amount decimal.Decimal) int32 {
	abs := amount.Abs()
	switch {
	case abs.IsZero():
		return 2
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return 2
	case abs.GreaterThanOrEqual(decimal.NewFromFloat(0.1)):
		return 3
	case abs.GreaterThanOrEqual(decimal.NewFromFloat(0.01)):
		return 4
	case abs.GreaterThanOrEqual(decimal.NewFromFloat(0.001)):
		return 5
	default:
		return 6
	}
}

// trimTrailingZeros removes trailing fractional zeros but keeps at
// least 2 decimal places so money values stay in their usual form
// ex "0.00800" -> "0.008", "5.00" -> "5.00"
func trimTrailingZeros(num string) string {
	dot := strings.IndexByte(num, '.')
	if dot < 0 {
		return num
	}
	for len(num)-dot-1 > 2 && num[len(num)-1] == '0' {
		num = num[:len(num)-1]
	}
	return num
}
