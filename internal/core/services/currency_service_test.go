package services_test

import (
	"testing"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/SscSPs/storefront_totals/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyService_Resolve(t *testing.T) {
	svc := services.NewCurrencyService(services.DefaultStoreCurrency())

	eur := domain.CartItemTotals{CurrencyResponseInfo: domain.CurrencyResponseInfo{
		CurrencyCode:              "EUR",
		CurrencySymbol:            "€",
		CurrencyMinorUnit:         2,
		CurrencyDecimalSeparator:  ",",
		CurrencyThousandSeparator: ".",
		CurrencySuffix:            " €",
	}}

	tests := []struct {
		name string
		info domain.CurrencyInfoProvider
		want domain.Currency
	}{
		{
			name: "copies every field",
			info: eur,
			want: domain.Currency{Code: "EUR", Symbol: "€", MinorUnit: 2, DecimalSeparator: ",", ThousandSeparator: ".", Suffix: " €"},
		},
		{
			name: "zero minor unit",
			info: domain.CurrencyResponseInfo{CurrencyCode: "JPY", CurrencySymbol: "¥", CurrencyPrefix: "¥"},
			want: domain.Currency{Code: "JPY", Symbol: "¥", Prefix: "¥"},
		},
		{
			name: "empty fragment falls back to store default",
			info: domain.CartTotals{},
			want: services.DefaultStoreCurrency(),
		},
		{
			name: "nil provider falls back to store default",
			info: nil,
			want: services.DefaultStoreCurrency(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Resolve(tt.info))
		})
	}
}

func TestCurrencyService_Default(t *testing.T) {
	gbp := domain.Currency{Code: "GBP", Symbol: "£", MinorUnit: 2, Prefix: "£"}
	svc := services.NewCurrencyService(gbp)
	assert.Equal(t, gbp, svc.Default())
	assert.Equal(t, gbp, svc.Resolve(domain.CurrencyResponseInfo{}))
}
