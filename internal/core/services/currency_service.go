package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/utils/mapping"
)

// currencyService implements the CurrencyResolverSvc interface
type currencyService struct {
	fallback domain.Currency
}

// NewCurrencyService creates a resolver falling back to the given store currency
// for fragments that carry no currency block.
func NewCurrencyService(fallback domain.Currency) portssvc.CurrencyResolverSvc {
	return &currencyService{fallback: fallback}
}

// Ensure currencyService implements the CurrencyResolverSvc interface
var _ portssvc.CurrencyResolverSvc = (*currencyService)(nil)

func (s *currencyService) Resolve(info domain.CurrencyInfoProvider) domain.Currency {
	if info == nil {
		return s.fallback
	}
	block := info.CurrencyInfo()
	if block.IsZero() {
		return s.fallback
	}
	return mapping.ToDomainCurrency(block)
}

func (s *currencyService) Default() domain.Currency {
	return s.fallback
}
