package entities

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MissingValue is what per-record displays show for an absent amount.
const MissingValue = "—"

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Amount returns the value for summation: missing counts as zero.
func Amount(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// Money wraps a known amount.
func Money(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// FormatBRL renders a value as "R$ 1.234,56". Rounding happens here only;
// totals are always summed unrounded. The digits come from the decimal
// itself so large totals print exactly.
func FormatBRL(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + groupThousands(intPart) + "," + frac
}

// groupThousands applies pt-BR digit grouping to a non-negative integer
// string. Values beyond int64 are grouped by hand.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return brlPrinter.Sprintf("%d", n)
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatOptionalBRL is FormatBRL for per-record fields that may be missing.
func FormatOptionalBRL(v decimal.NullDecimal) string {
	if !v.Valid {
		return MissingValue
	}
	return FormatBRL(v.Decimal)
}
