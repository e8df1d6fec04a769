package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/storefront_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker portssvc.EventTracker, filterOptions ...FilterOption) (*portssvc.ServiceContainer, error) {
	totalsCfg, err := cfg.TotalsConfig()
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	// Filters first, every composer resolves through them
	container.Filters = NewFilterRegistry(filterOptions...)
	if cfg.FiltersFile != "" {
		rules, err := LoadFilterRules(cfg.FiltersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load filter rules: %w", err)
		}
		RegisterFilterRules(container.Filters, rules)
	}

	container.Currency = NewCurrencyService(cfg.DefaultCurrency())
	container.Totals = NewTotalsService(container.Filters)
	container.LineItems = NewLineItemService(container.Currency, container.Filters)

	options := []CartServiceOption{
		WithTotalsConfig(totalsCfg),
		WithCurrencyResolver(container.Currency),
		WithComposers(container.Totals, container.LineItems),
	}
	if tracker != nil {
		options = append(options, WithEventTracker(tracker))
	}
	container.Cart = NewCartService(repos.CartRepo, options...)

	return container, nil
}
