package domain

// Filter names understood by the composers.
const (
	FilterItemName             = "itemName"
	FilterCartItemPrice        = "cartItemPrice"
	FilterSubtotalPriceFormat  = "subtotalPriceFormat"
	FilterSaleBadgePriceFormat = "saleBadgePriceFormat"
	FilterCouponName           = "couponName"
)

// Locations a filter can be resolved from.
const (
	LocationCart    = "cart"
	LocationSummary = "summary"
)

// PriceToken is replaced by the formatted price inside a price format.
const PriceToken = "<price/>"

// FilterContext is handed to every filter handler.
type FilterContext struct {
	Location string        `json:"context"`
	Entity   any           `json:"entity"` // CartItem or CartCoupon
	Cart     *CartResponse `json:"-"`
}

// CartView is a fully composed cart: summary rows and item rows.
type CartView struct {
	Currency      Currency       `json:"currency"`
	Rows          []DisplayRow   `json:"rows"`
	Items         []LineItemView `json:"items"`
	ItemsCount    int64          `json:"itemsCount"`
	NeedsPayment  bool           `json:"needsPayment"`
	NeedsShipping bool           `json:"needsShipping"`
	Errors        []CartError    `json:"errors,omitempty"`
}
