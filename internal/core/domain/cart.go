package domain

import "github.com/shopspring/decimal"

// CartResponse is the Store API cart document. Monetary fields are integer strings
// scaled by the currency minor unit of the fragment carrying them.
type CartResponse struct {
	Coupons               []CartCoupon          `json:"coupons"`
	ShippingRates         []CartShippingPackage `json:"shipping_rates"`
	ShippingAddress       CartAddress           `json:"shipping_address"`
	BillingAddress        CartAddress           `json:"billing_address"`
	Items                 []CartItem            `json:"items"`
	ItemsCount            int64                 `json:"items_count"`
	ItemsWeight           decimal.Decimal       `json:"items_weight"`
	NeedsPayment          bool                  `json:"needs_payment"`
	NeedsShipping         bool                  `json:"needs_shipping"`
	HasCalculatedShipping bool                  `json:"has_calculated_shipping"`
	Fees                  []CartFee             `json:"fees"`
	Totals                CartTotals            `json:"totals"`
	Errors                []CartError           `json:"errors"`
	Extensions            map[string]any        `json:"extensions,omitempty"`
}

// CartTotals is the totals fragment of a cart.
type CartTotals struct {
	CurrencyResponseInfo
	TotalItems       string        `json:"total_items"`
	TotalItemsTax    string        `json:"total_items_tax"`
	TotalFees        string        `json:"total_fees"`
	TotalFeesTax     string        `json:"total_fees_tax"`
	TotalDiscount    string        `json:"total_discount"`
	TotalDiscountTax string        `json:"total_discount_tax"`
	TotalShipping    string        `json:"total_shipping"` // null until shipping is calculated
	TotalShippingTax string        `json:"total_shipping_tax"`
	TotalPrice       string        `json:"total_price"`
	TotalTax         string        `json:"total_tax"`
	TaxLines         []CartTaxLine `json:"tax_lines"`
}

// CartTaxLine is one itemized tax of the cart totals.
type CartTaxLine struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Rate  string `json:"rate"`
}

// CartCoupon is a coupon applied to the cart.
type CartCoupon struct {
	Code         string           `json:"code"`
	DiscountType string           `json:"discount_type"`
	Totals       CartCouponTotals `json:"totals"`
}

// CartCouponTotals carries the discount a single coupon contributed.
type CartCouponTotals struct {
	CurrencyResponseInfo
	TotalDiscount    string `json:"total_discount"`
	TotalDiscountTax string `json:"total_discount_tax"`
}

// CartItem is one line of the cart.
type CartItem struct {
	Key                string           `json:"key"`
	ID                 int64            `json:"id"`
	Quantity           int64            `json:"quantity"`
	CatalogVisibility  string           `json:"catalog_visibility"` // visible, catalog, search, hidden
	QuantityLimit      int64            `json:"quantity_limit"`
	Name               string           `json:"name"`
	Summary            string           `json:"summary"`
	ShortDescription   string           `json:"short_description"`
	Description        string           `json:"description"`
	SKU                string           `json:"sku"`
	LowStockRemaining  *int64           `json:"low_stock_remaining"`
	BackordersAllowed  bool             `json:"backorders_allowed"`
	ShowBackorderBadge bool             `json:"show_backorder_badge"`
	SoldIndividually   bool             `json:"sold_individually"`
	Permalink          string           `json:"permalink"`
	Images             []CartImage      `json:"images"`
	Variation          []CartVariation  `json:"variation"`
	Prices             CartItemPrices   `json:"prices"`
	Totals             CartItemTotals   `json:"totals"`
	Extensions         map[string]any   `json:"extensions,omitempty"`
	ItemData           []map[string]any `json:"item_data,omitempty"`
}

// CartItemPrices holds the unit prices of a line, at display and raw precision.
type CartItemPrices struct {
	CurrencyResponseInfo
	Price        string          `json:"price"`
	RegularPrice string          `json:"regular_price"`
	SalePrice    string          `json:"sale_price"`
	PriceRange   *CartPriceRange `json:"price_range"`
	RawPrices    CartRawPrices   `json:"raw_prices"`
}

// CartPriceRange is set for variable products.
type CartPriceRange struct {
	MinAmount string `json:"min_amount"`
	MaxAmount string `json:"max_amount"`
}

// CartRawPrices are unit prices at the store's internal precision (usually 6).
type CartRawPrices struct {
	Precision    int32  `json:"precision"`
	Price        string `json:"price"`
	RegularPrice string `json:"regular_price"`
	SalePrice    string `json:"sale_price"`
}

// CartItemTotals are server-computed, quantity-multiplied line totals.
type CartItemTotals struct {
	CurrencyResponseInfo
	LineSubtotal    string `json:"line_subtotal"`
	LineSubtotalTax string `json:"line_subtotal_tax"`
	LineTotal       string `json:"line_total"`
	LineTotalTax    string `json:"line_total_tax"`
}

// CartImage is a product image reference.
type CartImage struct {
	ID        int64  `json:"id"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail"`
	Srcset    string `json:"srcset"`
	Sizes     string `json:"sizes"`
	Name      string `json:"name"`
	Alt       string `json:"alt"`
}

// CartVariation is a selected attribute of a variable product.
type CartVariation struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// CartShippingPackage groups the items shipped together and their rates.
type CartShippingPackage struct {
	PackageID     any                `json:"package_id"` // number in core, string for some extensions
	Name          string             `json:"name"`
	Destination   CartAddress        `json:"destination"`
	Items         []CartShippingItem `json:"items"`
	ShippingRates []CartShippingRate `json:"shipping_rates"`
}

// CartShippingItem is an item of a shipping package.
type CartShippingItem struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// CartShippingRate is one selectable rate of a package.
type CartShippingRate struct {
	CurrencyResponseInfo
	RateID       string         `json:"rate_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	DeliveryTime string         `json:"delivery_time"`
	Price        string         `json:"price"`
	Taxes        string         `json:"taxes"`
	InstanceID   int64          `json:"instance_id"`
	MethodID     string         `json:"method_id"`
	MetaData     []MetaKeyValue `json:"meta_data"`
	Selected     bool           `json:"selected"`
}

// MetaKeyValue is a free-form key/value pair.
type MetaKeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CartFee is an extra fee added to the cart.
type CartFee struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Totals CartFeeTotals `json:"totals"`
}

// CartFeeTotals carries the amount of a fee.
type CartFeeTotals struct {
	CurrencyResponseInfo
	Total    string `json:"total"`
	TotalTax string `json:"total_tax"`
}

// CartAddress covers both shipping and billing addresses; billing adds phone and email.
type CartAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// CartError is a notice returned alongside the cart.
type CartError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CouponCodes returns the codes of all applied coupons, in response order.
func (c CartResponse) CouponCodes() []string {
	codes := make([]string, 0, len(c.Coupons))
	for _, coupon := range c.Coupons {
		codes = append(codes, coupon.Code)
	}
	return codes
}

// FindItem returns the item with the given key.
func (c CartResponse) FindItem(key string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.Key == key {
			return item, true
		}
	}
	return CartItem{}, false
}
