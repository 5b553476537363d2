// Package cleaner normalizes raw flight tables into their cleaned form.
package cleaner

import (
	"fmt"

	"flightprep/internal/config"
	"flightprep/internal/models"
)

// Rule is one independent, per-column normalization step.
type Rule interface {
	Name() string
	Apply(t *models.Table) error
}

// Processor applies the cleaning rules to a raw table.
type Processor struct {
	validator *Validator
	rules     []Rule
}

// NewProcessor creates a processor with the standard rule set.
func NewProcessor(cfg *config.PipelineConfig) *Processor {
	return &Processor{
		validator: NewValidator(),
		rules: []Rule{
			NewAirlineRule(),
			NewFlightCodeRule(cfg.CodeStep),
			NewRouteRule(cfg.RouteSeparator),
			NewDelayRule(),
		},
	}
}

// Process validates the raw table and applies every rule to a clone, returning
// the cleaned table. The input table is never mutated, so callers holding the
// pre-clean table never observe partial cleaning.
func (p *Processor) Process(raw *models.Table) (*models.Table, error) {
	if err := p.validator.Validate(raw); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cleaned := raw.Clone()

	// Rules are independent per column; the order here only fixes which
	// failure surfaces first.
	for _, rule := range p.rules {
		if err := rule.Apply(cleaned); err != nil {
			return nil, fmt.Errorf("%s failed: %w", rule.Name(), err)
		}
	}

	return cleaned, nil
}
