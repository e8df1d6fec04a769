package services

import (
	"fmt"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
)

// lineItemService implements the LineItemComposerSvc interface
type lineItemService struct {
	currency portssvc.CurrencyResolverSvc
	filters  portssvc.FilterRegistry
}

// NewLineItemService creates a line item composer.
func NewLineItemService(currency portssvc.CurrencyResolverSvc, filters portssvc.FilterRegistry) portssvc.LineItemComposerSvc {
	return &lineItemService{currency: currency, filters: filters}
}

// Ensure lineItemService implements the LineItemComposerSvc interface
var _ portssvc.LineItemComposerSvc = (*lineItemService)(nil)

var priceFormatValidator = All(MustBeString, MustContain(domain.PriceToken))

func (s *lineItemService) ComposeItem(item domain.CartItem, cart *domain.CartResponse, cfg domain.TotalsConfig) (domain.LineItemView, error) {
	money, err := domain.NewLineItemMoney(item)
	if err != nil {
		return domain.LineItemView{}, fmt.Errorf("item %s: %w", item.Key, err)
	}
	saleAmount, err := money.SaleAmount()
	if err != nil {
		return domain.LineItemView{}, fmt.Errorf("item %s: %w", item.Key, err)
	}

	priceCurrency := s.currency.Resolve(item.Prices)
	totalsCurrency := s.currency.Resolve(item.Totals)
	toPrice := func(a domain.FixedPointAmount) int64 {
		return a.ToDisplayMinorUnitWith(priceCurrency, cfg.Rounding)
	}

	fc := domain.FilterContext{Location: domain.LocationCart, Entity: item, Cart: cart}
	saleSingle := money.SaleAmountSingle()

	view := domain.LineItemView{
		Key:                  item.Key,
		Name:                 ApplyFilter(s.filters, domain.FilterItemName, item.Name, fc, MustBeString),
		Quantity:             item.Quantity,
		QuantityLimit:        item.EffectiveQuantityLimit(),
		Permalink:            item.Permalink,
		LinkDisabled:         item.IsHiddenFromCatalog(),
		PriceCurrency:        priceCurrency,
		TotalsCurrency:       totalsCurrency,
		Price:                toPrice(money.PurchasePrice),
		RegularPrice:         toPrice(money.RegularPrice),
		SaleAmountSingle:     toPrice(saleSingle),
		SaleAmount:           toPrice(saleAmount),
		LineSubtotal:         money.Subtotal(cfg.IncludeTaxInDisplayedPrice).ToDisplayMinorUnitWith(totalsCurrency, cfg.Rounding),
		CartItemPriceFormat:  ApplyFilter(s.filters, domain.FilterCartItemPrice, domain.PriceToken, fc, priceFormatValidator),
		SubtotalPriceFormat:  ApplyFilter(s.filters, domain.FilterSubtotalPriceFormat, domain.PriceToken, fc, priceFormatValidator),
		SaleBadgePriceFormat: ApplyFilter(s.filters, domain.FilterSaleBadgePriceFormat, domain.PriceToken, fc, priceFormatValidator),
		ShowBackorderBadge:   item.ShowBackorderBadge,
	}
	view.ShowUnitSaleBadge = view.SaleAmountSingle > 0
	view.ShowTotalSaleBadge = item.Quantity > 1 && view.SaleAmount > 0

	if len(item.Images) > 0 {
		image := item.Images[0]
		view.Image = &image
	}
	// backorder badge takes the slot of the low stock badge
	if !item.ShowBackorderBadge && item.LowStockRemaining != nil && *item.LowStockRemaining > 0 {
		remaining := *item.LowStockRemaining
		view.LowStockRemaining = &remaining
	}
	return view, nil
}

func (s *lineItemService) ComposeItems(cart *domain.CartResponse, cfg domain.TotalsConfig) ([]domain.LineItemView, error) {
	if cart == nil {
		return nil, nil
	}
	views := make([]domain.LineItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		view, err := s.ComposeItem(item, cart, cfg)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
