package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`

	// Remote Store API
	StoreAPIURL     string        `mapstructure:"STORE_API_URL" validate:"omitempty,url"`
	StoreAPITimeout time.Duration `mapstructure:"STORE_API_TIMEOUT" validate:"gt=0"`
	CartTokenSecret string        `mapstructure:"CART_TOKEN_SECRET"`

	// Totals display
	DisplayCartPricesIncludingTax bool   `mapstructure:"DISPLAY_CART_PRICES_INCLUDING_TAX"`
	TaxesEnabled                  bool   `mapstructure:"TAXES_ENABLED"`
	DisplayItemizedTaxes          bool   `mapstructure:"DISPLAY_ITEMIZED_TAXES"`
	ShowRateAfterTaxName          bool   `mapstructure:"SHOW_RATE_AFTER_TAX_NAME"`
	PriceDownscaleRounding        string `mapstructure:"PRICE_DOWNSCALE_ROUNDING" validate:"oneof=truncate half_even bankers"`

	// Store default currency, used when a response carries no currency block
	DefaultCurrencyCode              string `mapstructure:"DEFAULT_CURRENCY_CODE" validate:"required,len=3"`
	DefaultCurrencySymbol            string `mapstructure:"DEFAULT_CURRENCY_SYMBOL"`
	DefaultCurrencyMinorUnit         int32  `mapstructure:"DEFAULT_CURRENCY_MINOR_UNIT" validate:"gte=0,lte=18"`
	DefaultCurrencyDecimalSeparator  string `mapstructure:"DEFAULT_CURRENCY_DECIMAL_SEPARATOR"`
	DefaultCurrencyThousandSeparator string `mapstructure:"DEFAULT_CURRENCY_THOUSAND_SEPARATOR"`
	DefaultCurrencyPrefix            string `mapstructure:"DEFAULT_CURRENCY_PREFIX"`
	DefaultCurrencySuffix            string `mapstructure:"DEFAULT_CURRENCY_SUFFIX"`

	FiltersFile        string   `mapstructure:"FILTERS_FILE"`
	RateLimit          string   `mapstructure:"RATE_LIMIT" validate:"required"`
	PosthogAPIKey      string   `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint    string   `mapstructure:"POSTHOG_ENDPOINT" validate:"omitempty,url"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_API_URL", "")
	v.SetDefault("STORE_API_TIMEOUT", "10s")
	v.SetDefault("CART_TOKEN_SECRET", "")
	v.SetDefault("DISPLAY_CART_PRICES_INCLUDING_TAX", false)
	v.SetDefault("TAXES_ENABLED", true)
	v.SetDefault("DISPLAY_ITEMIZED_TAXES", false)
	v.SetDefault("SHOW_RATE_AFTER_TAX_NAME", false)
	v.SetDefault("PRICE_DOWNSCALE_ROUNDING", "truncate")
	v.SetDefault("DEFAULT_CURRENCY_CODE", "USD")
	v.SetDefault("DEFAULT_CURRENCY_SYMBOL", "$")
	v.SetDefault("DEFAULT_CURRENCY_MINOR_UNIT", 2)
	v.SetDefault("DEFAULT_CURRENCY_DECIMAL_SEPARATOR", ".")
	v.SetDefault("DEFAULT_CURRENCY_THOUSAND_SEPARATOR", ",")
	v.SetDefault("DEFAULT_CURRENCY_PREFIX", "$")
	v.SetDefault("DEFAULT_CURRENCY_SUFFIX", "")
	v.SetDefault("FILTERS_FILE", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return Load(viper.New())
}

// Load reads the configuration through v, after applying defaults and binding
// the environment.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                             v.GetString("PORT"),
		IsProduction:                     v.GetBool("IS_PRODUCTION"),
		StoreAPIURL:                      strings.TrimRight(v.GetString("STORE_API_URL"), "/"),
		StoreAPITimeout:                  v.GetDuration("STORE_API_TIMEOUT"),
		CartTokenSecret:                  v.GetString("CART_TOKEN_SECRET"),
		DisplayCartPricesIncludingTax:    v.GetBool("DISPLAY_CART_PRICES_INCLUDING_TAX"),
		TaxesEnabled:                     v.GetBool("TAXES_ENABLED"),
		DisplayItemizedTaxes:             v.GetBool("DISPLAY_ITEMIZED_TAXES"),
		ShowRateAfterTaxName:             v.GetBool("SHOW_RATE_AFTER_TAX_NAME"),
		PriceDownscaleRounding:           strings.ToLower(v.GetString("PRICE_DOWNSCALE_ROUNDING")),
		DefaultCurrencyCode:              v.GetString("DEFAULT_CURRENCY_CODE"),
		DefaultCurrencySymbol:            v.GetString("DEFAULT_CURRENCY_SYMBOL"),
		DefaultCurrencyMinorUnit:         v.GetInt32("DEFAULT_CURRENCY_MINOR_UNIT"),
		DefaultCurrencyDecimalSeparator:  v.GetString("DEFAULT_CURRENCY_DECIMAL_SEPARATOR"),
		DefaultCurrencyThousandSeparator: v.GetString("DEFAULT_CURRENCY_THOUSAND_SEPARATOR"),
		DefaultCurrencyPrefix:            v.GetString("DEFAULT_CURRENCY_PREFIX"),
		DefaultCurrencySuffix:            v.GetString("DEFAULT_CURRENCY_SUFFIX"),
		FiltersFile:                      v.GetString("FILTERS_FILE"),
		RateLimit:                        v.GetString("RATE_LIMIT"),
		PosthogAPIKey:                    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:                  v.GetString("POSTHOG_ENDPOINT"),
		CORSAllowedOrigins:               splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.StoreAPIURL == "" {
		log.Println("Warning: STORE_API_URL not set. Store cart proxy routes will not function.")
	}
	if cfg.CartTokenSecret == "" {
		log.Println("Warning: CART_TOKEN_SECRET not set. Cart tokens will be forwarded without verification.")
	}

	return cfg, nil
}

// TotalsConfig returns the display configuration consumed by the composers.
func (c *Config) TotalsConfig() (domain.TotalsConfig, error) {
	mode, err := domain.ParseRoundingMode(c.PriceDownscaleRounding)
	if err != nil {
		return domain.TotalsConfig{}, err
	}
	return domain.TotalsConfig{
		IncludeTaxInDisplayedPrice: c.DisplayCartPricesIncludingTax,
		TaxesEnabled:               c.TaxesEnabled,
		ItemizedTaxDisplay:         c.DisplayItemizedTaxes,
		ShowRateAfterTaxName:       c.ShowRateAfterTaxName,
		Rounding:                   mode,
	}, nil
}

// DefaultCurrency returns the configured store currency.
func (c *Config) DefaultCurrency() domain.Currency {
	return domain.Currency{
		Code:              c.DefaultCurrencyCode,
		Symbol:            c.DefaultCurrencySymbol,
		MinorUnit:         c.DefaultCurrencyMinorUnit,
		DecimalSeparator:  c.DefaultCurrencyDecimalSeparator,
		ThousandSeparator: c.DefaultCurrencyThousandSeparator,
		Prefix:            c.DefaultCurrencyPrefix,
		Suffix:            c.DefaultCurrencySuffix,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
