package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
)

// Row labels.
const (
	LabelSubtotal = "Subtotal"
	LabelFees     = "Fees"
	LabelDiscount = "Discount"
	LabelCoupons  = "Coupons"
	LabelShipping = "Shipping"
	LabelTaxes    = "Taxes"
	LabelTotal    = "Total"
)

// totalsService implements the TotalsComposerSvc interface
type totalsService struct {
	filters portssvc.FilterRegistry
}

// NewTotalsService creates a totals composer resolving coupon names through filters.
// A nil registry leaves coupon codes untouched.
func NewTotalsService(filters portssvc.FilterRegistry) portssvc.TotalsComposerSvc {
	return &totalsService{filters: filters}
}

// Ensure totalsService implements the TotalsComposerSvc interface
var _ portssvc.TotalsComposerSvc = (*totalsService)(nil)

func (s *totalsService) Compose(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig, cart *domain.CartResponse) []domain.DisplayRow {
	rows := make([]domain.DisplayRow, 0, len(snapshot.TaxLines)+2)
	if row, ok := s.discountRow(snapshot, currency, cfg, cart); ok {
		rows = append(rows, row)
	}
	return append(rows, taxRows(snapshot, currency, cfg)...)
}

func (s *totalsService) ComposeSummary(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig, cart *domain.CartResponse) []domain.DisplayRow {
	rows := make([]domain.DisplayRow, 0, len(snapshot.TaxLines)+6)

	subtotal := withTax(snapshot.TotalItems, snapshot.TotalItemsTax, cfg.IncludeTaxInDisplayedPrice)
	rows = append(rows, valueRow(domain.RowSubtotal, LabelSubtotal, subtotal, currency))

	fees := withTax(snapshot.TotalFees, snapshot.TotalFeesTax, cfg.IncludeTaxInDisplayedPrice)
	if !fees.IsZero() || snapshot.FeeCount > 0 {
		rows = append(rows, valueRow(domain.RowFees, LabelFees, fees, currency))
	}

	if row, ok := s.discountRow(snapshot, currency, cfg, cart); ok {
		rows = append(rows, row)
	}

	if row, ok := shippingRow(snapshot, currency, cfg); ok {
		rows = append(rows, row)
	}

	rows = append(rows, taxRows(snapshot, currency, cfg)...)
	return append(rows, valueRow(domain.RowTotal, LabelTotal, snapshot.TotalPrice, currency))
}

func (s *totalsService) discountRow(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig, cart *domain.CartResponse) (domain.DisplayRow, bool) {
	combined := withTax(snapshot.TotalDiscount, snapshot.TotalDiscountTax, cfg.IncludeTaxInDisplayedPrice)
	if snapshot.TotalDiscount.IsZero() && len(snapshot.Coupons) == 0 {
		return domain.DisplayRow{}, false
	}

	row := domain.DisplayRow{Kind: domain.RowDiscount, Coupons: s.couponNames(snapshot.Coupons, cart)}
	if combined.IsZero() {
		row.Label = LabelCoupons
		row.Placeholder = domain.PlaceholderDash
		return row, true
	}
	row.Label = LabelDiscount
	row.Value = domain.Int64Ptr(combined.Negate().ToDisplayMinorUnit(currency))
	return row, true
}

func (s *totalsService) couponNames(coupons []domain.CartCoupon, cart *domain.CartResponse) []string {
	if len(coupons) == 0 {
		return nil
	}
	names := make([]string, 0, len(coupons))
	for _, coupon := range coupons {
		fc := domain.FilterContext{Location: domain.LocationSummary, Entity: coupon, Cart: cart}
		names = append(names, ApplyFilter(s.filters, domain.FilterCouponName, coupon.Code, fc, MustBeString))
	}
	return names
}

func shippingRow(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig) (domain.DisplayRow, bool) {
	if snapshot.ShippingPending {
		if !snapshot.HasShippingRates {
			return domain.DisplayRow{}, false
		}
		return domain.DisplayRow{Kind: domain.RowShipping, Label: LabelShipping}, true
	}
	shipping := withTax(snapshot.TotalShipping, snapshot.TotalShippingTax, cfg.IncludeTaxInDisplayedPrice)
	if shipping.IsZero() && !snapshot.HasShippingRates {
		return domain.DisplayRow{}, false
	}
	return valueRow(domain.RowShipping, LabelShipping, shipping, currency), true
}

func taxRows(snapshot domain.CartTotalsSnapshot, currency domain.Currency, cfg domain.TotalsConfig) []domain.DisplayRow {
	if !cfg.TaxesEnabled {
		return nil
	}
	var rows []domain.DisplayRow
	if cfg.ItemizedTaxDisplay {
		for _, line := range snapshot.TaxLines {
			label := line.Name
			if cfg.ShowRateAfterTaxName {
				label += " " + line.Rate
			}
			rows = append(rows, domain.DisplayRow{Kind: domain.RowTaxLine, Label: label})
		}
	}
	return append(rows, valueRow(domain.RowTaxes, LabelTaxes, snapshot.TotalTax, currency))
}

func withTax(amount, tax domain.FixedPointAmount, include bool) domain.FixedPointAmount {
	if include {
		return amount.Add(tax)
	}
	return amount
}

func valueRow(kind domain.RowKind, label string, amount domain.FixedPointAmount, currency domain.Currency) domain.DisplayRow {
	return domain.DisplayRow{Kind: kind, Label: label, Value: domain.Int64Ptr(amount.ToDisplayMinorUnit(currency))}
}
