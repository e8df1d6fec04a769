package config

import (
	"testing"
	"time"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.StoreAPITimeout)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Empty(t, cfg.CORSAllowedOrigins)

	totals, err := cfg.TotalsConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalsConfig(), totals)

	assert.Equal(t, domain.Currency{
		Code: "USD", Symbol: "$", MinorUnit: 2,
		DecimalSeparator: ".", ThousandSeparator: ",", Prefix: "$",
	}, cfg.DefaultCurrency())
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DISPLAY_CART_PRICES_INCLUDING_TAX", true)
	v.Set("DISPLAY_ITEMIZED_TAXES", true)
	v.Set("PRICE_DOWNSCALE_ROUNDING", "HALF_EVEN")
	v.Set("STORE_API_URL", "https://shop.example.com/")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", cfg.StoreAPIURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)

	totals, err := cfg.TotalsConfig()
	require.NoError(t, err)
	assert.True(t, totals.IncludeTaxInDisplayedPrice)
	assert.True(t, totals.ItemizedTaxDisplay)
	assert.True(t, totals.TaxesEnabled)
	assert.Equal(t, domain.RoundHalfEven, totals.Rounding)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "rounding mode", key: "PRICE_DOWNSCALE_ROUNDING", value: "up"},
		{name: "store url", key: "STORE_API_URL", value: "not a url"},
		{name: "currency code", key: "DEFAULT_CURRENCY_CODE", value: "DOLLAR"},
		{name: "port", key: "PORT", value: "http"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
