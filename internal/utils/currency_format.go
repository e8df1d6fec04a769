package utils

import (
	"strings"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatPrice renders a minor-unit integer in the given currency.
// Example: 123456 with USD (minor unit 2, "," thousands, "$" prefix) returns "$1,234.56"
// Example: -550 with EUR (minor unit 2, "." thousands, "," decimals, " €" suffix) returns "-5,50 €"
// Example: 1000 with JPY (minor unit 0) returns "¥1,000"
func FormatPrice(minor int64, c domain.Currency) string {
	value := decimal.New(minor, -c.MinorUnit)
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(c.MinorUnit)

	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(c.Prefix)
	b.WriteString(groupThousands(integer, c.ThousandSeparator))
	if c.MinorUnit > 0 {
		sep := c.DecimalSeparator
		if sep == "" {
			sep = "."
		}
		b.WriteString(sep)
		b.WriteString(fraction)
	}
	b.WriteString(c.Suffix)
	return b.String()
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ApplyPriceFormat substitutes the formatted price for the price token of a format.
func ApplyPriceFormat(format, formattedPrice string) string {
	if format == "" {
		return formattedPrice
	}
	return strings.ReplaceAll(format, domain.PriceToken, formattedPrice)
}

// FormatRowValue renders the value of a display row. Rows without a value show
// their placeholder, or nothing.
func FormatRowValue(row domain.DisplayRow, c domain.Currency) string {
	if row.Value == nil {
		return row.Placeholder
	}
	return FormatPrice(*row.Value, c)
}
