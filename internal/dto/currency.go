package dto

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// ResolveCurrencyRequest is the currency block of any Store API response fragment.
type ResolveCurrencyRequest struct {
	domain.CurrencyResponseInfo
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code              string `json:"code"`
	Symbol            string `json:"symbol"`
	MinorUnit         int32  `json:"minorUnit"`
	DecimalSeparator  string `json:"decimalSeparator"`
	ThousandSeparator string `json:"thousandSeparator"`
	Prefix            string `json:"prefix"`
	Suffix            string `json:"suffix"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:              c.Code,
		Symbol:            c.Symbol,
		MinorUnit:         c.MinorUnit,
		DecimalSeparator:  c.DecimalSeparator,
		ThousandSeparator: c.ThousandSeparator,
		Prefix:            c.Prefix,
		Suffix:            c.Suffix,
	}
}
