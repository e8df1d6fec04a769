package storeapi

import (
	"context"
	"net/http"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_totals/internal/core/ports/repositories"
)

// CartRepository reads and mutates carts through the remote Store API.
type CartRepository struct {
	client *Client
}

// NewCartRepository creates a new repository for Store API carts.
func NewCartRepository(client *Client) portsrepo.CartRepositoryFacade {
	return &CartRepository{client: client}
}

// Ensure CartRepository implements the CartRepositoryFacade interface
var _ portsrepo.CartRepositoryFacade = (*CartRepository)(nil)

type itemRequest struct {
	Key      string `json:"key"`
	Quantity int64  `json:"quantity,omitempty"`
}

type couponRequest struct {
	Code string `json:"code"`
}

func (r *CartRepository) GetCart(ctx context.Context, cartToken string) (*domain.CartResponse, error) {
	return r.call(ctx, http.MethodGet, "/cart", cartToken, nil)
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartToken, itemKey string, quantity int64) (*domain.CartResponse, error) {
	return r.call(ctx, http.MethodPost, "/cart/update-item", cartToken, itemRequest{Key: itemKey, Quantity: quantity})
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartToken, itemKey string) (*domain.CartResponse, error) {
	return r.call(ctx, http.MethodPost, "/cart/remove-item", cartToken, itemRequest{Key: itemKey})
}

func (r *CartRepository) ApplyCoupon(ctx context.Context, cartToken, code string) (*domain.CartResponse, error) {
	return r.call(ctx, http.MethodPost, "/cart/apply-coupon", cartToken, couponRequest{Code: code})
}

func (r *CartRepository) RemoveCoupon(ctx context.Context, cartToken, code string) (*domain.CartResponse, error) {
	return r.call(ctx, http.MethodPost, "/cart/remove-coupon", cartToken, couponRequest{Code: code})
}

func (r *CartRepository) call(ctx context.Context, method, path, cartToken string, body any) (*domain.CartResponse, error) {
	var cart domain.CartResponse
	if err := r.client.do(ctx, method, path, cartToken, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
