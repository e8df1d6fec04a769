package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// LineItemComposerSvc builds the view of one cart line.
type LineItemComposerSvc interface {
	// ComposeItem converts the item prices to display precision and resolves the item filters.
	ComposeItem(item domain.CartItem, cart *domain.CartResponse, cfg domain.TotalsConfig) (domain.LineItemView, error)

	// ComposeItems composes every item of the cart, in cart order.
	ComposeItems(cart *domain.CartResponse, cfg domain.TotalsConfig) ([]domain.LineItemView, error)
}
