package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCompactNumber renders a quantity for display, abbreviating
// large magnitudes: 2500000 -> "2.5M", 1200000000 -> "1.2G",
// 1000 -> "1,000", 3 -> "3", 2.5 -> "2.5"
func FormatCompactNumber(n decimal.Decimal) string {
	abs := n.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.New(1, 12)):
		return scaledWithUnit(n, 12, "T")
	case abs.GreaterThanOrEqual(decimal.New(1, 9)):
		return scaledWithUnit(n, 9, "G")
	case abs.GreaterThanOrEqual(decimal.New(1, 6)):
		return scaledWithUnit(n, 6, "M")
	case abs.GreaterThanOrEqual(decimal.New(1, 3)):
		return groupThousands(n.Round(0).String())
	case n.IsInteger():
		return n.String()
	default:
		return n.Round(1).String()
	}
}

// FormatCompactNumberFromString is FormatCompactNumber over provider
// values that may arrive as numeric strings. Non-numeric input is
// returned unchanged.
func FormatCompactNumberFromString(s string) string {
	n, ok := ParseAmount(s)
	if !ok {
		return s
	}
	return FormatCompactNumber(n)
}

// scaledWithUnit formats n divided by 10^exp to one decimal place,
// dropping a trailing ".0" ex 2500000 -> "2.5M", 1000000 -> "1M"
func scaledWithUnit(n decimal.Decimal, exp int32, unit string) string {
	scaled := n.DivRound(decimal.New(1, exp), 1)
	return strings.TrimSuffix(scaled.StringFixed(1), ".0") + unit
}

// groupThousands inserts comma separators into an integer string
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
