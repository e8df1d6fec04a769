package services_test

import (
	"testing"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/core/services"
	"github.com/stretchr/testify/suite"
)

var usd = services.DefaultStoreCurrency()

func amount(v int64) domain.FixedPointAmount {
	return domain.NewFixedPointAmount(v, 2)
}

func rowKinds(rows []domain.DisplayRow) []domain.RowKind {
	kinds := make([]domain.RowKind, 0, len(rows))
	for _, row := range rows {
		kinds = append(kinds, row.Kind)
	}
	return kinds
}

type TotalsServiceTestSuite struct {
	suite.Suite
	filters portssvc.FilterRegistry
	service portssvc.TotalsComposerSvc
	cfg     domain.TotalsConfig
}

func (suite *TotalsServiceTestSuite) SetupTest() {
	suite.filters = services.NewFilterRegistry()
	suite.service = services.NewTotalsService(suite.filters)
	suite.cfg = domain.DefaultTotalsConfig()
}

func (suite *TotalsServiceTestSuite) snapshot() domain.CartTotalsSnapshot {
	return domain.CartTotalsSnapshot{
		TotalItems:       amount(2400),
		TotalItemsTax:    amount(480),
		TotalDiscount:    amount(500),
		TotalDiscountTax: amount(50),
		TotalShipping:    amount(300),
		TotalShippingTax: amount(0),
		TotalPrice:       amount(2630),
		TotalTax:         amount(430),
		TaxLines:         []domain.TaxLineAmount{{Name: "VAT", Rate: "20%", Amount: amount(430)}},
		Coupons:          []domain.CartCoupon{{Code: "spring"}},
		HasShippingRates: true,
	}
}

func (suite *TotalsServiceTestSuite) TestDiscountIncludesTaxWhenPricesIncludeTax() {
	suite.cfg.IncludeTaxInDisplayedPrice = true

	rows := suite.service.Compose(suite.snapshot(), usd, suite.cfg, nil)

	suite.Require().Len(rows, 2)
	suite.Equal(domain.RowDiscount, rows[0].Kind)
	suite.Equal(services.LabelDiscount, rows[0].Label)
	suite.Require().True(rows[0].HasValue())
	suite.Equal(int64(-550), *rows[0].Value)
	suite.Equal([]string{"spring"}, rows[0].Coupons)
}

func (suite *TotalsServiceTestSuite) TestDiscountExcludesTaxByDefault() {
	rows := suite.service.Compose(suite.snapshot(), usd, suite.cfg, nil)

	suite.Require().NotEmpty(rows)
	suite.Equal(int64(-500), *rows[0].Value)
}

func (suite *TotalsServiceTestSuite) TestCouponsWithoutMonetaryDiscountShowPlaceholder() {
	snap := suite.snapshot()
	snap.TotalDiscount = amount(0)
	snap.TotalDiscountTax = amount(0)
	snap.Coupons = []domain.CartCoupon{{Code: "freeship"}}

	rows := suite.service.Compose(snap, usd, suite.cfg, nil)

	suite.Require().NotEmpty(rows)
	suite.Equal(services.LabelCoupons, rows[0].Label)
	suite.False(rows[0].HasValue())
	suite.Equal(domain.PlaceholderDash, rows[0].Placeholder)
	suite.Equal([]string{"freeship"}, rows[0].Coupons)
}

func (suite *TotalsServiceTestSuite) TestNoDiscountRowWithoutDiscountOrCoupons() {
	snap := suite.snapshot()
	snap.TotalDiscount = amount(0)
	snap.TotalDiscountTax = amount(10)
	snap.Coupons = nil
	suite.cfg.IncludeTaxInDisplayedPrice = true

	rows := suite.service.Compose(snap, usd, suite.cfg, nil)

	suite.Equal([]domain.RowKind{domain.RowTaxes}, rowKinds(rows))
}

func (suite *TotalsServiceTestSuite) TestTaxesDisabledProducesNoTaxRows() {
	suite.cfg.TaxesEnabled = false
	suite.cfg.ItemizedTaxDisplay = true

	rows := suite.service.Compose(suite.snapshot(), usd, suite.cfg, nil)

	suite.Equal([]domain.RowKind{domain.RowDiscount}, rowKinds(rows))
}

func (suite *TotalsServiceTestSuite) TestAggregateTaxRow() {
	suite.cfg.IncludeTaxInDisplayedPrice = true

	rows := suite.service.Compose(suite.snapshot(), usd, suite.cfg, nil)

	suite.Require().Len(rows, 2)
	suite.Equal(services.LabelTaxes, rows[1].Label)
	suite.Equal(int64(430), *rows[1].Value)
}

func (suite *TotalsServiceTestSuite) TestItemizedTaxRows() {
	tests := []struct {
		name      string
		showRate  bool
		wantLabel string
	}{
		{name: "name only", showRate: false, wantLabel: "VAT"},
		{name: "name and rate", showRate: true, wantLabel: "VAT 20%"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cfg := suite.cfg
			cfg.ItemizedTaxDisplay = true
			cfg.ShowRateAfterTaxName = tt.showRate

			rows := suite.service.Compose(suite.snapshot(), usd, cfg, nil)

			suite.Equal([]domain.RowKind{domain.RowDiscount, domain.RowTaxLine, domain.RowTaxes}, rowKinds(rows))
			suite.Equal(tt.wantLabel, rows[1].Label)
			suite.Nil(rows[1].Value)
			suite.Equal(int64(430), *rows[2].Value)
		})
	}
}

func (suite *TotalsServiceTestSuite) TestCouponNameFilter() {
	suite.filters.Register(domain.FilterCouponName, func(value any, fc domain.FilterContext) any {
		if fc.Location != domain.LocationSummary {
			return value
		}
		return "Coupon: " + value.(string)
	})
	suite.filters.Register(domain.FilterCouponName, func(value any, fc domain.FilterContext) any {
		if coupon, ok := fc.Entity.(domain.CartCoupon); ok && coupon.Code == "secret" {
			return 0 // rejected, not a string
		}
		return value
	})
	snap := suite.snapshot()
	snap.Coupons = []domain.CartCoupon{{Code: "spring"}, {Code: "secret"}}

	rows := suite.service.Compose(snap, usd, suite.cfg, nil)

	suite.Equal([]string{"Coupon: spring", "secret"}, rows[0].Coupons)
}

func (suite *TotalsServiceTestSuite) TestComposeSummaryOrder() {
	snap := suite.snapshot()
	snap.TotalFees = amount(150)
	snap.FeeCount = 1

	rows := suite.service.ComposeSummary(snap, usd, suite.cfg, nil)

	suite.Equal([]domain.RowKind{
		domain.RowSubtotal, domain.RowFees, domain.RowDiscount, domain.RowShipping, domain.RowTaxes, domain.RowTotal,
	}, rowKinds(rows))
	suite.Equal(int64(2400), *rows[0].Value)
	suite.Equal(int64(150), *rows[1].Value)
	suite.Equal(int64(300), *rows[3].Value)
	suite.Equal(int64(2630), *rows[5].Value)
}

func (suite *TotalsServiceTestSuite) TestComposeSummaryTaxInclusiveSubtotal() {
	suite.cfg.IncludeTaxInDisplayedPrice = true

	rows := suite.service.ComposeSummary(suite.snapshot(), usd, suite.cfg, nil)

	suite.Equal(int64(2880), *rows[0].Value)
}

func (suite *TotalsServiceTestSuite) TestComposeSummaryOmitsEmptyFeesAndShipping() {
	snap := suite.snapshot()
	snap.TotalShipping = amount(0)
	snap.HasShippingRates = false

	rows := suite.service.ComposeSummary(snap, usd, suite.cfg, nil)

	suite.Equal([]domain.RowKind{domain.RowSubtotal, domain.RowDiscount, domain.RowTaxes, domain.RowTotal}, rowKinds(rows))
}

func (suite *TotalsServiceTestSuite) TestComposeSummaryPendingShipping() {
	snap := suite.snapshot()
	snap.ShippingPending = true
	snap.TotalShipping = amount(0)

	rows := suite.service.ComposeSummary(snap, usd, suite.cfg, nil)

	suite.Require().Len(rows, 5)
	suite.Equal(domain.RowShipping, rows[2].Kind)
	suite.Nil(rows[2].Value)
}

func TestTotalsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TotalsServiceTestSuite))
}
