package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
)

// filterRegistry implements the FilterRegistry interface
type filterRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]portssvc.FilterHandler
	logger   *slog.Logger
	onReject func(name string)
}

// FilterOption configures the filter registry
type FilterOption func(*filterRegistry)

// WithFilterLogger sets the logger used for fallback warnings
func WithFilterLogger(logger *slog.Logger) FilterOption {
	return func(r *filterRegistry) {
		r.logger = logger
	}
}

// WithFallbackObserver sets a callback invoked with the filter name whenever a
// filtered value is discarded.
func WithFallbackObserver(observe func(name string)) FilterOption {
	return func(r *filterRegistry) {
		r.onReject = observe
	}
}

// NewFilterRegistry creates an empty registry. Resolving an unregistered filter
// returns the default value unchanged.
func NewFilterRegistry(options ...FilterOption) portssvc.FilterRegistry {
	r := &filterRegistry{
		handlers: make(map[string][]portssvc.FilterHandler),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Ensure filterRegistry implements the FilterRegistry interface
var _ portssvc.FilterRegistry = (*filterRegistry)(nil)

func (r *filterRegistry) Register(name string, handler portssvc.FilterHandler) {
	if handler == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = append(r.handlers[name], handler)
}

func (r *filterRegistry) Resolve(name string, defaultValue any, fc domain.FilterContext, validate portssvc.Validator) any {
	r.mu.RLock()
	chain := r.handlers[name]
	r.mu.RUnlock()

	if len(chain) == 0 {
		return defaultValue
	}

	value, err := runChain(chain, defaultValue, fc)
	if err != nil {
		r.reject(name, fc, "filter handler panicked", slog.String("error", err.Error()))
		return defaultValue
	}
	if validate != nil && !validate(value) {
		r.reject(name, fc, "filtered value failed validation", slog.Any("value", value))
		return defaultValue
	}
	return value
}

func (r *filterRegistry) reject(name string, fc domain.FilterContext, msg string, attrs ...any) {
	args := append([]any{slog.String("filter", name), slog.String("context", fc.Location)}, attrs...)
	r.logger.Warn(msg, args...)
	if r.onReject != nil {
		r.onReject(name)
	}
}

func runChain(chain []portssvc.FilterHandler, value any, fc domain.FilterContext) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	for _, handler := range chain {
		value = handler(value, fc)
	}
	return value, nil
}

// ApplyFilter resolves a filter for a typed default. A result of another type is
// treated as a validation failure.
func ApplyFilter[T any](registry portssvc.FilterRegistry, name string, defaultValue T, fc domain.FilterContext, validate portssvc.Validator) T {
	if registry == nil {
		return defaultValue
	}
	typed := func(value any) bool {
		if _, ok := value.(T); !ok {
			return false
		}
		return validate == nil || validate(value)
	}
	result, ok := registry.Resolve(name, defaultValue, fc, typed).(T)
	if !ok {
		return defaultValue
	}
	return result
}

// MustBeString accepts any string.
func MustBeString(value any) bool {
	_, ok := value.(string)
	return ok
}

// MustContain accepts strings containing substr.
func MustContain(substr string) portssvc.Validator {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && strings.Contains(s, substr)
	}
}

// All accepts a value only when every validator does.
func All(validators ...portssvc.Validator) portssvc.Validator {
	return func(value any) bool {
		for _, v := range validators {
			if !v(value) {
				return false
			}
		}
		return true
	}
}
