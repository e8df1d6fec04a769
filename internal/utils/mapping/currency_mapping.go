package mapping

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// ToDomainCurrency converts a response currency block to a domain Currency
func ToDomainCurrency(info domain.CurrencyResponseInfo) domain.Currency {
	return domain.Currency{
		Code:              info.CurrencyCode,
		Symbol:            info.CurrencySymbol,
		MinorUnit:         info.CurrencyMinorUnit,
		DecimalSeparator:  info.CurrencyDecimalSeparator,
		ThousandSeparator: info.CurrencyThousandSeparator,
		Prefix:            info.CurrencyPrefix,
		Suffix:            info.CurrencySuffix,
	}
}
