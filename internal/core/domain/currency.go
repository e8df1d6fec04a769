package domain

// Currency describes how amounts of a Store API response are scaled and rendered.
// All amounts expressed under a Currency are integers of value * 10^MinorUnit.
type Currency struct {
	Code              string `json:"code"`              // e.g. "USD"
	Symbol            string `json:"symbol"`            // e.g. "$"
	MinorUnit         int32  `json:"minorUnit"`         // digits after the decimal point, >= 0
	DecimalSeparator  string `json:"decimalSeparator"`  // e.g. "."
	ThousandSeparator string `json:"thousandSeparator"` // e.g. ","
	Prefix            string `json:"prefix"`            // rendered before the number
	Suffix            string `json:"suffix"`            // rendered after the number
}

// CurrencyResponseInfo is the currency block that recurs on totals, coupons, items,
// shipping rates and fees of a Store API response.
type CurrencyResponseInfo struct {
	CurrencyCode              string `json:"currency_code"`
	CurrencySymbol            string `json:"currency_symbol"`
	CurrencyMinorUnit         int32  `json:"currency_minor_unit"`
	CurrencyDecimalSeparator  string `json:"currency_decimal_separator"`
	CurrencyThousandSeparator string `json:"currency_thousand_separator"`
	CurrencyPrefix            string `json:"currency_prefix"`
	CurrencySuffix            string `json:"currency_suffix"`
}

// CurrencyInfoProvider is implemented by every response fragment embedding CurrencyResponseInfo.
type CurrencyInfoProvider interface {
	CurrencyInfo() CurrencyResponseInfo
}

// CurrencyInfo returns the currency block itself. Embedding types inherit it.
func (c CurrencyResponseInfo) CurrencyInfo() CurrencyResponseInfo {
	return c
}

// IsZero reports whether no currency field was supplied.
func (c CurrencyResponseInfo) IsZero() bool {
	return c == CurrencyResponseInfo{}
}
