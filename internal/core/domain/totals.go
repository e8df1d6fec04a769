package domain

import "fmt"

// TotalsConfig is the host configuration consumed when composing display rows.
type TotalsConfig struct {
	IncludeTaxInDisplayedPrice bool         // displayCartPricesIncludingTax
	TaxesEnabled               bool         // taxesEnabled
	ItemizedTaxDisplay         bool         // displayItemizedTaxes
	ShowRateAfterTaxName       bool         // append the rate to itemized tax labels
	Rounding                   RoundingMode // downscale mode for raw prices
}

// DefaultTotalsConfig returns the store defaults: taxes shown as one aggregate row
// on tax-exclusive prices.
func DefaultTotalsConfig() TotalsConfig {
	return TotalsConfig{TaxesEnabled: true}
}

// TaxLineAmount is a parsed itemized tax line.
type TaxLineAmount struct {
	Name   string
	Rate   string
	Amount FixedPointAmount
}

// CartTotalsSnapshot holds the server-computed cart aggregates parsed to integers at
// the totals precision. Nothing here is recomputed on the client.
type CartTotalsSnapshot struct {
	TotalItems       FixedPointAmount
	TotalItemsTax    FixedPointAmount
	TotalFees        FixedPointAmount
	TotalFeesTax     FixedPointAmount
	TotalDiscount    FixedPointAmount
	TotalDiscountTax FixedPointAmount
	TotalShipping    FixedPointAmount
	TotalShippingTax FixedPointAmount
	ShippingPending  bool // total_shipping was null
	TotalPrice       FixedPointAmount
	TotalTax         FixedPointAmount
	TaxLines         []TaxLineAmount
	Coupons          []CartCoupon
	FeeCount         int
	HasShippingRates bool
}

type amountField struct {
	name  string
	value string
	dst   *FixedPointAmount
}

// NewCartTotalsSnapshot parses the totals fragment and coupon list of a cart.
func NewCartTotalsSnapshot(totals CartTotals, coupons []CartCoupon) (CartTotalsSnapshot, error) {
	snap := CartTotalsSnapshot{Coupons: coupons, ShippingPending: totals.TotalShipping == ""}
	precision := totals.CurrencyMinorUnit

	fields := []amountField{
		{"total_items", totals.TotalItems, &snap.TotalItems},
		{"total_items_tax", totals.TotalItemsTax, &snap.TotalItemsTax},
		{"total_fees", totals.TotalFees, &snap.TotalFees},
		{"total_fees_tax", totals.TotalFeesTax, &snap.TotalFeesTax},
		{"total_discount", totals.TotalDiscount, &snap.TotalDiscount},
		{"total_discount_tax", totals.TotalDiscountTax, &snap.TotalDiscountTax},
		{"total_shipping", totals.TotalShipping, &snap.TotalShipping},
		{"total_shipping_tax", totals.TotalShippingTax, &snap.TotalShippingTax},
		{"total_price", totals.TotalPrice, &snap.TotalPrice},
		{"total_tax", totals.TotalTax, &snap.TotalTax},
	}
	for _, f := range fields {
		amount, err := ParseFixedPointAmount(f.value, precision)
		if err != nil {
			return CartTotalsSnapshot{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = amount
	}

	for i, line := range totals.TaxLines {
		amount, err := ParseFixedPointAmount(line.Price, precision)
		if err != nil {
			return CartTotalsSnapshot{}, fmt.Errorf("parse tax_lines[%d].price: %w", i, err)
		}
		snap.TaxLines = append(snap.TaxLines, TaxLineAmount{Name: line.Name, Rate: line.Rate, Amount: amount})
	}
	return snap, nil
}

// NewCartTotalsSnapshotFromCart parses the totals of a whole cart, including the
// fee and shipping presence flags.
func NewCartTotalsSnapshotFromCart(cart CartResponse) (CartTotalsSnapshot, error) {
	snap, err := NewCartTotalsSnapshot(cart.Totals, cart.Coupons)
	if err != nil {
		return CartTotalsSnapshot{}, err
	}
	snap.FeeCount = len(cart.Fees)
	for _, pkg := range cart.ShippingRates {
		if len(pkg.ShippingRates) > 0 {
			snap.HasShippingRates = true
			break
		}
	}
	return snap, nil
}

// RowKind identifies what a display row shows.
type RowKind string

const (
	RowSubtotal RowKind = "subtotal"
	RowFees     RowKind = "fees"
	RowDiscount RowKind = "discount"
	RowShipping RowKind = "shipping"
	RowTaxLine  RowKind = "tax_line"
	RowTaxes    RowKind = "taxes"
	RowTotal    RowKind = "total"
)

// PlaceholderDash is shown instead of a value when coupons apply no monetary discount.
const PlaceholderDash = "-"

// DisplayRow is a label/value pair shown to the shopper. Value is nil when there is
// no numeric value to show; Placeholder, when set, is rendered in its place.
type DisplayRow struct {
	Kind        RowKind  `json:"kind"`
	Label       string   `json:"label"`
	Value       *int64   `json:"value"`
	Placeholder string   `json:"placeholder,omitempty"`
	Coupons     []string `json:"coupons,omitempty"` // filtered coupon codes on the discount row
}

// HasValue reports whether the row carries a numeric value.
func (r DisplayRow) HasValue() bool {
	return r.Value != nil
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
