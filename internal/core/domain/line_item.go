package domain

// DefaultRawPricePrecision is the precision of raw_prices when the response omits it.
const DefaultRawPricePrecision int32 = 6

// DefaultQuantityLimit applies when an item does not state its own limit.
const DefaultQuantityLimit int64 = 99

// LineItemMoney is the money of one cart line: unit prices at their raw precision
// and the server-supplied, quantity-multiplied line subtotal at display precision.
type LineItemMoney struct {
	RegularPrice    FixedPointAmount
	PurchasePrice   FixedPointAmount
	Quantity        int64
	LineSubtotal    FixedPointAmount
	LineSubtotalTax FixedPointAmount
}

// NewLineItemMoney parses the price and totals fragments of an item.
func NewLineItemMoney(item CartItem) (LineItemMoney, error) {
	precision := item.Prices.RawPrices.Precision
	if precision == 0 && item.Prices.RawPrices.Price == "" && item.Prices.RawPrices.RegularPrice == "" {
		precision = DefaultRawPricePrecision
	}
	regular, err := ParseFixedPointAmount(item.Prices.RawPrices.RegularPrice, precision)
	if err != nil {
		return LineItemMoney{}, err
	}
	purchase, err := ParseFixedPointAmount(item.Prices.RawPrices.Price, precision)
	if err != nil {
		return LineItemMoney{}, err
	}
	subtotal, err := ParseFixedPointAmount(item.Totals.LineSubtotal, item.Totals.CurrencyMinorUnit)
	if err != nil {
		return LineItemMoney{}, err
	}
	subtotalTax, err := ParseFixedPointAmount(item.Totals.LineSubtotalTax, item.Totals.CurrencyMinorUnit)
	if err != nil {
		return LineItemMoney{}, err
	}
	return LineItemMoney{
		RegularPrice:    regular,
		PurchasePrice:   purchase,
		Quantity:        item.Quantity,
		LineSubtotal:    subtotal,
		LineSubtotalTax: subtotalTax,
	}, nil
}

// SaleAmountSingle is the per-unit saving, regular minus purchase price.
func (m LineItemMoney) SaleAmountSingle() FixedPointAmount {
	return m.RegularPrice.Subtract(m.PurchasePrice)
}

// SaleAmount is the saving over the whole line.
func (m LineItemMoney) SaleAmount() (FixedPointAmount, error) {
	return m.SaleAmountSingle().MultiplyByQuantity(m.Quantity)
}

// Subtotal returns the line subtotal, with its tax added when prices display tax-inclusive.
func (m LineItemMoney) Subtotal(includeTax bool) FixedPointAmount {
	if includeTax {
		return m.LineSubtotal.Add(m.LineSubtotalTax)
	}
	return m.LineSubtotal
}

// LineItemView is everything a cart row renders for one item. Amounts are integers
// in the minor unit of the currency they are shown with.
type LineItemView struct {
	Key                  string     `json:"key"`
	Name                 string     `json:"name"`
	Quantity             int64      `json:"quantity"`
	QuantityLimit        int64      `json:"quantityLimit"`
	Permalink            string     `json:"permalink"`
	LinkDisabled         bool       `json:"linkDisabled"` // hidden from catalog
	Image                *CartImage `json:"image,omitempty"`
	PriceCurrency        Currency   `json:"priceCurrency"`
	TotalsCurrency       Currency   `json:"totalsCurrency"`
	Price                int64      `json:"price"`
	RegularPrice         int64      `json:"regularPrice"`
	SaleAmountSingle     int64      `json:"saleAmountSingle"`
	SaleAmount           int64      `json:"saleAmount"`
	ShowUnitSaleBadge    bool       `json:"showUnitSaleBadge"`
	ShowTotalSaleBadge   bool       `json:"showTotalSaleBadge"`
	LineSubtotal         int64      `json:"lineSubtotal"`
	CartItemPriceFormat  string     `json:"cartItemPriceFormat"`  // format of the line total
	SubtotalPriceFormat  string     `json:"subtotalPriceFormat"`  // format of the unit prices
	SaleBadgePriceFormat string     `json:"saleBadgePriceFormat"` // format of both sale badges
	ShowBackorderBadge   bool       `json:"showBackorderBadge"`
	LowStockRemaining    *int64     `json:"lowStockRemaining,omitempty"`
}

// IsHiddenFromCatalog reports whether the product page must not be linked.
func (i CartItem) IsHiddenFromCatalog() bool {
	return i.CatalogVisibility == "hidden" || i.CatalogVisibility == "search"
}

// EffectiveQuantityLimit returns the item limit, or the default when unset.
func (i CartItem) EffectiveQuantityLimit() int64 {
	if i.QuantityLimit <= 0 {
		return DefaultQuantityLimit
	}
	return i.QuantityLimit
}
