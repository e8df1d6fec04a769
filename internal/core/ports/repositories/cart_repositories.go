package repositories

import (
	"context"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// CartReader defines read operations against the remote Store API cart.
type CartReader interface {
	// GetCart retrieves the cart identified by the Cart-Token.
	GetCart(ctx context.Context, cartToken string) (*domain.CartResponse, error)
}

// CartWriter defines the cart mutations the Store API performs. Each returns the
// recomputed cart; the server is the only source of truth for totals.
type CartWriter interface {
	// UpdateItemQuantity sets the quantity of the item with the given key.
	UpdateItemQuantity(ctx context.Context, cartToken, itemKey string, quantity int64) (*domain.CartResponse, error)

	// RemoveItem removes the item with the given key.
	RemoveItem(ctx context.Context, cartToken, itemKey string) (*domain.CartResponse, error)

	// ApplyCoupon applies a coupon code.
	ApplyCoupon(ctx context.Context, cartToken, code string) (*domain.CartResponse, error)

	// RemoveCoupon removes an applied coupon code.
	RemoveCoupon(ctx context.Context, cartToken, code string) (*domain.CartResponse, error)
}

// CartRepositoryFacade combines all cart-related repository interfaces
type CartRepositoryFacade interface {
	CartReader
	CartWriter
}
