package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
)

// Store events tracked for cart mutations.
const (
	EventSetItemQuantity = "cart-set-item-quantity"
	EventRemoveItem      = "cart-remove-item"
	EventApplyCoupon     = "cart-apply-coupon"
	EventRemoveCoupon    = "cart-remove-coupon"
)

const anonymousDistinctID = "anonymous"

// cartService implements the CartSvcFacade interface
type cartService struct {
	BaseService
	cartRepo  portsrepo.CartRepositoryFacade
	currency  portssvc.CurrencyResolverSvc
	totals    portssvc.TotalsComposerSvc
	lineItems portssvc.LineItemComposerSvc
	config    domain.TotalsConfig
	events    portssvc.EventTracker
}

// CartServiceOption is a functional option for configuring the cart service
type CartServiceOption func(*cartService)

// WithTotalsConfig sets the host totals configuration
func WithTotalsConfig(cfg domain.TotalsConfig) CartServiceOption {
	return func(s *cartService) {
		s.config = cfg
	}
}

// WithEventTracker adds the store event tracker
func WithEventTracker(tracker portssvc.EventTracker) CartServiceOption {
	return func(s *cartService) {
		s.events = tracker
	}
}

// WithCurrencyResolver overrides the currency resolver
func WithCurrencyResolver(resolver portssvc.CurrencyResolverSvc) CartServiceOption {
	return func(s *cartService) {
		s.currency = resolver
	}
}

// WithComposers overrides the totals and line item composers
func WithComposers(totals portssvc.TotalsComposerSvc, lineItems portssvc.LineItemComposerSvc) CartServiceOption {
	return func(s *cartService) {
		s.totals = totals
		s.lineItems = lineItems
	}
}

// NewCartService creates a new cart service with the provided options. Without
// overrides it renders with the store default currency and no filters.
func NewCartService(repo portsrepo.CartRepositoryFacade, options ...CartServiceOption) portssvc.CartSvcFacade {
	svc := &cartService{
		cartRepo: repo,
		config:   domain.DefaultTotalsConfig(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	if svc.currency == nil {
		svc.currency = NewCurrencyService(DefaultStoreCurrency())
	}
	if svc.totals == nil {
		svc.totals = NewTotalsService(nil)
	}
	if svc.lineItems == nil {
		svc.lineItems = NewLineItemService(svc.currency, nil)
	}
	return svc
}

// Ensure cartService implements the CartSvcFacade interface
var _ portssvc.CartSvcFacade = (*cartService)(nil)

// DefaultStoreCurrency is the currency assumed when a response carries none.
func DefaultStoreCurrency() domain.Currency {
	return domain.Currency{
		Code:              "USD",
		Symbol:            "$",
		MinorUnit:         2,
		DecimalSeparator:  ".",
		ThousandSeparator: ",",
		Prefix:            "$",
	}
}

func (s *cartService) Config() domain.TotalsConfig {
	return s.config
}

func (s *cartService) RenderCart(ctx context.Context, cart domain.CartResponse) (*domain.CartView, error) {
	snapshot, err := domain.NewCartTotalsSnapshotFromCart(cart)
	if err != nil {
		s.LogError(ctx, err, "Failed to parse cart totals")
		return nil, err
	}

	currency := s.currency.Resolve(cart.Totals)
	items, err := s.lineItems.ComposeItems(&cart, s.config)
	if err != nil {
		s.LogError(ctx, err, "Failed to compose cart items", slog.Int("items", len(cart.Items)))
		return nil, err
	}

	return &domain.CartView{
		Currency:      currency,
		Rows:          s.totals.ComposeSummary(snapshot, currency, s.config, &cart),
		Items:         items,
		ItemsCount:    cart.ItemsCount,
		NeedsPayment:  cart.NeedsPayment,
		NeedsShipping: cart.NeedsShipping,
		Errors:        cart.Errors,
	}, nil
}

func (s *cartService) RenderTotals(ctx context.Context, totals domain.CartTotals, coupons []domain.CartCoupon, cfg *domain.TotalsConfig) ([]domain.DisplayRow, domain.Currency, error) {
	snapshot, err := domain.NewCartTotalsSnapshot(totals, coupons)
	if err != nil {
		s.LogError(ctx, err, "Failed to parse totals")
		return nil, domain.Currency{}, err
	}
	effective := s.config
	if cfg != nil {
		effective = *cfg
	}
	currency := s.currency.Resolve(totals)
	return s.totals.Compose(snapshot, currency, effective, nil), currency, nil
}

func (s *cartService) GetCart(ctx context.Context, cartToken string) (*domain.CartView, error) {
	cart, err := s.cartRepo.GetCart(ctx, cartToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cart")
		return nil, err
	}
	return s.RenderCart(ctx, *cart)
}

func (s *cartService) SetItemQuantity(ctx context.Context, cartToken, sessionID, itemKey string, quantity int64) (*domain.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1, got %d", apperrors.ErrInvalidQuantity, quantity)
	}

	current, err := s.cartRepo.GetCart(ctx, cartToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cart", slog.String("item_key", itemKey))
		return nil, err
	}
	item, ok := current.FindItem(itemKey)
	if !ok {
		return nil, fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, itemKey)
	}
	if limit := item.EffectiveQuantityLimit(); quantity > limit {
		return nil, fmt.Errorf("%w: quantity %d exceeds the limit of %d", apperrors.ErrInvalidQuantity, quantity, limit)
	}

	cart, err := s.cartRepo.UpdateItemQuantity(ctx, cartToken, itemKey, quantity)
	if err != nil {
		s.LogError(ctx, err, "Failed to update item quantity",
			slog.String("item_key", itemKey),
			slog.Int64("quantity", quantity))
		return nil, err
	}
	s.LogInfo(ctx, "Cart item quantity updated", slog.String("item_key", itemKey), slog.Int64("quantity", quantity))
	s.track(ctx, sessionID, EventSetItemQuantity, itemProperties(item, quantity))
	return s.RenderCart(ctx, *cart)
}

func (s *cartService) RemoveItem(ctx context.Context, cartToken, sessionID, itemKey string) (*domain.CartView, error) {
	current, err := s.cartRepo.GetCart(ctx, cartToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cart", slog.String("item_key", itemKey))
		return nil, err
	}
	item, ok := current.FindItem(itemKey)
	if !ok {
		return nil, fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, itemKey)
	}

	cart, err := s.cartRepo.RemoveItem(ctx, cartToken, itemKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to remove item", slog.String("item_key", itemKey))
		return nil, err
	}
	s.LogInfo(ctx, "Cart item removed", slog.String("item_key", itemKey))
	s.track(ctx, sessionID, EventRemoveItem, itemProperties(item, item.Quantity))
	return s.RenderCart(ctx, *cart)
}

func (s *cartService) ApplyCoupon(ctx context.Context, cartToken, sessionID, code string) (*domain.CartView, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", apperrors.ErrValidation)
	}
	cart, err := s.cartRepo.ApplyCoupon(ctx, cartToken, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply coupon", slog.String("coupon", code))
		return nil, err
	}
	s.track(ctx, sessionID, EventApplyCoupon, map[string]any{"coupon": code})
	return s.RenderCart(ctx, *cart)
}

func (s *cartService) RemoveCoupon(ctx context.Context, cartToken, sessionID, code string) (*domain.CartView, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", apperrors.ErrValidation)
	}
	cart, err := s.cartRepo.RemoveCoupon(ctx, cartToken, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to remove coupon", slog.String("coupon", code))
		return nil, err
	}
	s.track(ctx, sessionID, EventRemoveCoupon, map[string]any{"coupon": code})
	return s.RenderCart(ctx, *cart)
}

func (s *cartService) track(ctx context.Context, sessionID, event string, properties map[string]any) {
	if s.events == nil {
		return
	}
	if sessionID == "" {
		sessionID = anonymousDistinctID
	}
	s.LogDebug(ctx, "Tracking store event", slog.String("event", event))
	s.events.Track(sessionID, event, properties)
}

func itemProperties(item domain.CartItem, quantity int64) map[string]any {
	return map[string]any{
		"product_id":   item.ID,
		"product_key":  item.Key,
		"product_name": item.Name,
		"quantity":     quantity,
	}
}
