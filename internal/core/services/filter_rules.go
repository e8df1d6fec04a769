package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/spf13/viper"
)

// Rule types understood by LoadFilterRules.
const (
	RuleTemplate = "template"
	RuleReplace  = "replace"
	RulePrefix   = "prefix"
	RuleSuffix   = "suffix"
)

// ValueToken is replaced by the running value inside a template rule.
const ValueToken = "{{value}}"

// FilterRule is a host-configured text override.
type FilterRule struct {
	Name    string `mapstructure:"name"`
	Type    string `mapstructure:"type"`
	Value   string `mapstructure:"value"`
	Context string `mapstructure:"context"` // restricts the rule to one location when set
}

type filterRulesFile struct {
	Filters []FilterRule `mapstructure:"filters"`
}

// LoadFilterRules reads rules from a YAML or JSON file of the form
// {"filters": [{"name": ..., "type": ..., "value": ...}]}.
func LoadFilterRules(path string) ([]FilterRule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read filters file %s: %w", path, err)
	}
	var file filterRulesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode filters file %s: %w", path, err)
	}
	for i, rule := range file.Filters {
		if err := rule.validate(); err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
	}
	return file.Filters, nil
}

func (r FilterRule) validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: filter rule name is required", apperrors.ErrValidation)
	}
	switch r.Type {
	case RuleTemplate, RuleReplace, RulePrefix, RuleSuffix:
		return nil
	default:
		return fmt.Errorf("%w: unknown filter rule type %q", apperrors.ErrValidation, r.Type)
	}
}

// Handler turns the rule into a filter handler. Non-string values pass through.
func (r FilterRule) Handler() portssvc.FilterHandler {
	return func(value any, fc domain.FilterContext) any {
		if r.Context != "" && r.Context != fc.Location {
			return value
		}
		s, ok := value.(string)
		if !ok {
			return value
		}
		switch r.Type {
		case RuleTemplate:
			return strings.ReplaceAll(r.Value, ValueToken, s)
		case RuleReplace:
			return r.Value
		case RulePrefix:
			return r.Value + s
		case RuleSuffix:
			return s + r.Value
		}
		return value
	}
}

// RegisterFilterRules registers every rule on the registry, in file order.
func RegisterFilterRules(registry portssvc.FilterRegistry, rules []FilterRule) {
	for _, rule := range rules {
		registry.Register(rule.Name, rule.Handler())
	}
}
