package dto

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/SscSPs/storefront_totals/internal/utils"
)

// TotalsConfigOverride replaces individual host settings for one request.
type TotalsConfigOverride struct {
	DisplayCartPricesIncludingTax *bool   `json:"displayCartPricesIncludingTax"`
	TaxesEnabled                  *bool   `json:"taxesEnabled"`
	DisplayItemizedTaxes          *bool   `json:"displayItemizedTaxes"`
	ShowRateAfterTaxName          *bool   `json:"showRateAfterTaxName"`
	Rounding                      *string `json:"rounding" binding:"omitempty,oneof=truncate half_even bankers"`
}

// Apply returns base with the overridden settings replaced.
func (o *TotalsConfigOverride) Apply(base domain.TotalsConfig) (domain.TotalsConfig, error) {
	if o == nil {
		return base, nil
	}
	if o.DisplayCartPricesIncludingTax != nil {
		base.IncludeTaxInDisplayedPrice = *o.DisplayCartPricesIncludingTax
	}
	if o.TaxesEnabled != nil {
		base.TaxesEnabled = *o.TaxesEnabled
	}
	if o.DisplayItemizedTaxes != nil {
		base.ItemizedTaxDisplay = *o.DisplayItemizedTaxes
	}
	if o.ShowRateAfterTaxName != nil {
		base.ShowRateAfterTaxName = *o.ShowRateAfterTaxName
	}
	if o.Rounding != nil {
		mode, err := domain.ParseRoundingMode(*o.Rounding)
		if err != nil {
			return domain.TotalsConfig{}, err
		}
		base.Rounding = mode
	}
	return base, nil
}

// ComposeTotalsRequest carries the totals fragment and coupons of a cart.
type ComposeTotalsRequest struct {
	Totals  domain.CartTotals     `json:"totals"`
	Coupons []domain.CartCoupon   `json:"coupons"`
	Config  *TotalsConfigOverride `json:"config"`
}

// DisplayRowResponse is a display row with its value rendered in the currency.
type DisplayRowResponse struct {
	Kind           domain.RowKind `json:"kind"`
	Label          string         `json:"label"`
	Value          *int64         `json:"value"`
	FormattedValue string         `json:"formattedValue"`
	Placeholder    string         `json:"placeholder,omitempty"`
	Coupons        []string       `json:"coupons,omitempty"`
}

// TotalsResponse defines the data returned for composed totals.
type TotalsResponse struct {
	Currency CurrencyResponse     `json:"currency"`
	Rows     []DisplayRowResponse `json:"rows"`
}

// ToDisplayRowResponse converts a domain.DisplayRow to its DTO
func ToDisplayRowResponse(row domain.DisplayRow, c domain.Currency) DisplayRowResponse {
	return DisplayRowResponse{
		Kind:           row.Kind,
		Label:          row.Label,
		Value:          row.Value,
		FormattedValue: utils.FormatRowValue(row, c),
		Placeholder:    row.Placeholder,
		Coupons:        row.Coupons,
	}
}

// ToDisplayRowResponses converts rows in order
func ToDisplayRowResponses(rows []domain.DisplayRow, c domain.Currency) []DisplayRowResponse {
	res := make([]DisplayRowResponse, len(rows))
	for i, row := range rows {
		res[i] = ToDisplayRowResponse(row, c)
	}
	return res
}

// ToTotalsResponse builds the totals response
func ToTotalsResponse(rows []domain.DisplayRow, c domain.Currency) TotalsResponse {
	return TotalsResponse{
		Currency: ToCurrencyResponse(c),
		Rows:     ToDisplayRowResponses(rows, c),
	}
}
