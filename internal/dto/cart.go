package dto

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/SscSPs/storefront_totals/internal/utils"
)

// SetItemQuantityRequest defines the new quantity of a cart item.
type SetItemQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// ApplyCouponRequest defines the coupon to apply.
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// LineItemResponse is a composed cart line with its prices rendered through the
// filtered price formats.
type LineItemResponse struct {
	Key                 string            `json:"key"`
	Name                string            `json:"name"`
	Quantity            int64             `json:"quantity"`
	QuantityLimit       int64             `json:"quantityLimit"`
	Permalink           string            `json:"permalink,omitempty"`
	LinkDisabled        bool              `json:"linkDisabled"`
	Image               *domain.CartImage `json:"image,omitempty"`
	Price               int64             `json:"price"`
	RegularPrice        int64             `json:"regularPrice"`
	FormattedPrice      string            `json:"formattedPrice"`
	FormattedRegular    string            `json:"formattedRegularPrice,omitempty"`
	SaleBadge           string            `json:"saleBadge,omitempty"`
	LineSubtotal        int64             `json:"lineSubtotal"`
	FormattedSubtotal   string            `json:"formattedLineSubtotal"`
	TotalSaleBadge      string            `json:"totalSaleBadge,omitempty"`
	ShowBackorderBadge  bool              `json:"showBackorderBadge"`
	LowStockRemaining   *int64            `json:"lowStockRemaining,omitempty"`
	PriceCurrencyCode   string            `json:"priceCurrencyCode"`
	TotalsCurrencyCode  string            `json:"totalsCurrencyCode"`
	SaleAmountSingle    int64             `json:"saleAmountSingle"`
	SaleAmount          int64             `json:"saleAmount"`
	CartItemPriceFormat string            `json:"cartItemPriceFormat"`
}

// ToLineItemResponse renders a composed line item
func ToLineItemResponse(v domain.LineItemView) LineItemResponse {
	res := LineItemResponse{
		Key:                 v.Key,
		Name:                v.Name,
		Quantity:            v.Quantity,
		QuantityLimit:       v.QuantityLimit,
		LinkDisabled:        v.LinkDisabled,
		Image:               v.Image,
		Price:               v.Price,
		RegularPrice:        v.RegularPrice,
		FormattedPrice:      utils.ApplyPriceFormat(v.SubtotalPriceFormat, utils.FormatPrice(v.Price, v.PriceCurrency)),
		LineSubtotal:        v.LineSubtotal,
		FormattedSubtotal:   utils.ApplyPriceFormat(v.CartItemPriceFormat, utils.FormatPrice(v.LineSubtotal, v.TotalsCurrency)),
		ShowBackorderBadge:  v.ShowBackorderBadge,
		LowStockRemaining:   v.LowStockRemaining,
		PriceCurrencyCode:   v.PriceCurrency.Code,
		TotalsCurrencyCode:  v.TotalsCurrency.Code,
		SaleAmountSingle:    v.SaleAmountSingle,
		SaleAmount:          v.SaleAmount,
		CartItemPriceFormat: v.CartItemPriceFormat,
	}
	if !v.LinkDisabled {
		res.Permalink = v.Permalink
	}
	if v.ShowUnitSaleBadge {
		res.FormattedRegular = utils.ApplyPriceFormat(v.SubtotalPriceFormat, utils.FormatPrice(v.RegularPrice, v.PriceCurrency))
		res.SaleBadge = utils.ApplyPriceFormat(v.SaleBadgePriceFormat, utils.FormatPrice(v.SaleAmountSingle, v.PriceCurrency))
	}
	if v.ShowTotalSaleBadge {
		res.TotalSaleBadge = utils.ApplyPriceFormat(v.SaleBadgePriceFormat, utils.FormatPrice(v.SaleAmount, v.PriceCurrency))
	}
	return res
}

// CartViewResponse defines the data returned for a composed cart.
type CartViewResponse struct {
	Currency      CurrencyResponse     `json:"currency"`
	Rows          []DisplayRowResponse `json:"rows"`
	Items         []LineItemResponse   `json:"items"`
	ItemsCount    int64                `json:"itemsCount"`
	NeedsPayment  bool                 `json:"needsPayment"`
	NeedsShipping bool                 `json:"needsShipping"`
	Errors        []domain.CartError   `json:"errors,omitempty"`
}

// ToCartViewResponse converts a domain.CartView to its DTO
func ToCartViewResponse(v *domain.CartView) CartViewResponse {
	items := make([]LineItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = ToLineItemResponse(item)
	}
	return CartViewResponse{
		Currency:      ToCurrencyResponse(v.Currency),
		Rows:          ToDisplayRowResponses(v.Rows, v.Currency),
		Items:         items,
		ItemsCount:    v.ItemsCount,
		NeedsPayment:  v.NeedsPayment,
		NeedsShipping: v.NeedsShipping,
		Errors:        v.Errors,
	}
}
