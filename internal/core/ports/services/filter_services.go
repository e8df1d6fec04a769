package services

import (
	"github.com/SscSPs/storefront_totals/internal/core/domain"
)

// FilterHandler receives the running value of a filter and returns its replacement.
type FilterHandler func(value any, fc domain.FilterContext) any

// Validator reports whether a filtered value is acceptable.
type Validator func(value any) bool

// FilterRegistry is the host-owned extension point for swapping display text.
type FilterRegistry interface {
	// Register appends a handler to the chain of the named filter.
	Register(name string, handler FilterHandler)

	// Resolve runs the named chain over defaultValue. A result failing validate is
	// discarded and defaultValue returned instead.
	Resolve(name string, defaultValue any, fc domain.FilterContext, validate Validator) any
}
