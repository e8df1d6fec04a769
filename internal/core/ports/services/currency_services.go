package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// CurrencyResolverSvc turns the currency block of a response fragment into a descriptor.
type CurrencyResolverSvc interface {
	// Resolve copies the seven currency fields of the fragment. An empty fragment
	// resolves to the store default currency.
	Resolve(info domain.CurrencyInfoProvider) domain.Currency

	// Default returns the store default currency.
	Default() domain.Currency
}
