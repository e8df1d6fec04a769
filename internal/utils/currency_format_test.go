package utils

import (
	"testing"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

var (
	usd = domain.Currency{Code: "USD", Symbol: "$", MinorUnit: 2, DecimalSeparator: ".", ThousandSeparator: ",", Prefix: "$"}
	eur = domain.Currency{Code: "EUR", Symbol: "€", MinorUnit: 2, DecimalSeparator: ",", ThousandSeparator: ".", Suffix: " €"}
	jpy = domain.Currency{Code: "JPY", Symbol: "¥", MinorUnit: 0, ThousandSeparator: ",", Prefix: "¥"}
	kwd = domain.Currency{Code: "KWD", MinorUnit: 3, DecimalSeparator: ".", ThousandSeparator: ",", Suffix: " KD"}
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency domain.Currency
		want     string
	}{
		{name: "usd grouping", minor: 123456, currency: usd, want: "$1,234.56"},
		{name: "usd millions", minor: 123456789, currency: usd, want: "$1,234,567.89"},
		{name: "usd cents only", minor: 5, currency: usd, want: "$0.05"},
		{name: "zero", minor: 0, currency: usd, want: "$0.00"},
		{name: "negative discount", minor: -550, currency: usd, want: "-$5.50"},
		{name: "eur separators and suffix", minor: -550, currency: eur, want: "-5,50 €"},
		{name: "eur thousands", minor: 100000, currency: eur, want: "1.000,00 €"},
		{name: "zero minor unit", minor: 1000, currency: jpy, want: "¥1,000"},
		{name: "three minor digits", minor: 1234567, currency: kwd, want: "1,234.567 KD"},
		{name: "no thousand separator", minor: 123456, currency: domain.Currency{MinorUnit: 2}, want: "1234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.minor, tt.currency))
		})
	}
}

func TestApplyPriceFormat(t *testing.T) {
	assert.Equal(t, "Save $2.00", ApplyPriceFormat("Save <price/>", "$2.00"))
	assert.Equal(t, "$2.00", ApplyPriceFormat("", "$2.00"))
	assert.Equal(t, "$2.00", ApplyPriceFormat(domain.PriceToken, "$2.00"))
}

func TestFormatRowValue(t *testing.T) {
	assert.Equal(t, "-$5.50", FormatRowValue(domain.DisplayRow{Value: domain.Int64Ptr(-550)}, usd))
	assert.Equal(t, "-", FormatRowValue(domain.DisplayRow{Placeholder: domain.PlaceholderDash}, usd))
	assert.Equal(t, "", FormatRowValue(domain.DisplayRow{Label: "VAT"}, usd))
}
