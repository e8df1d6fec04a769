package services

import (
	"context"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// CartRendererSvc composes a Store API cart into a view.
type CartRendererSvc interface {
	// RenderCart composes summary rows and line items from a cart snapshot.
	RenderCart(ctx context.Context, cart domain.CartResponse) (*domain.CartView, error)

	// RenderTotals composes only the discount and tax rows of a totals fragment.
	RenderTotals(ctx context.Context, totals domain.CartTotals, coupons []domain.CartCoupon, cfg *domain.TotalsConfig) ([]domain.DisplayRow, domain.Currency, error)

	// Config returns the host totals configuration.
	Config() domain.TotalsConfig
}

// CartMutatorSvc forwards cart mutations to the Store API and renders the result.
type CartMutatorSvc interface {
	GetCart(ctx context.Context, cartToken string) (*domain.CartView, error)
	SetItemQuantity(ctx context.Context, cartToken, sessionID, itemKey string, quantity int64) (*domain.CartView, error)
	RemoveItem(ctx context.Context, cartToken, sessionID, itemKey string) (*domain.CartView, error)
	ApplyCoupon(ctx context.Context, cartToken, sessionID, code string) (*domain.CartView, error)
	RemoveCoupon(ctx context.Context, cartToken, sessionID, code string) (*domain.CartView, error)
}

// CartSvcFacade combines all cart-related service interfaces
type CartSvcFacade interface {
	CartRendererSvc
	CartMutatorSvc
}

// EventTracker records store events such as quantity changes. Tracking is best effort.
type EventTracker interface {
	Track(distinctID, event string, properties map[string]any)
}
