package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// TotalsComposerSvc builds the ordered display rows of the cart totals.
type TotalsComposerSvc interface {
	// Compose returns the discount row (if any) followed by the tax rows.
	Compose(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig, cart *domain.CartResponse) []domain.DisplayRow

	// ComposeSummary returns the full summary: subtotal, fees, discount, shipping,
	// taxes and the order total.
	ComposeSummary(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig, cart *domain.CartResponse) []domain.DisplayRow
}
