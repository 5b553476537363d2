package cleaner

import (
	"errors"

	"github.com/spf13/cast"

	"flightprep/internal/models"
)

// ErrNoSeedFlightCode is returned when no row supplies a usable numeric
// flight code to seed the progression.
var ErrNoSeedFlightCode = errors.New("no row supplies a numeric flight code")

// FlightCodeRule regenerates flight codes from an arithmetic progression.
//
// The dataset is assumed to carry codes incrementing by a fixed step per row.
// That assumption is not verified: the rule seeds on the first numeric code it
// finds and overwrites every row, including rows whose original code was
// present. Keeping an original code that disagrees with the progression is
// not supported.
type FlightCodeRule struct {
	step int
}

// NewFlightCodeRule creates a new flight-code inference rule.
func NewFlightCodeRule(step int) *FlightCodeRule {
	return &FlightCodeRule{step: step}
}

// Name returns the rule name used in error context.
func (r *FlightCodeRule) Name() string {
	return "flight code inference"
}

// Apply replaces the flight-code column with start + step*i for row i.
func (r *FlightCodeRule) Apply(t *models.Table) error {
	start, err := r.seedCode(t)
	if err != nil {
		return err
	}

	for i, rec := range t.Records {
		rec[models.ColFlightCodes] = start + r.step*i
	}

	return nil
}

// seedCode finds the first non-missing numeric flight code in row order.
// Blank cells are missing; cells that fail numeric coercion are treated as
// missing too. Decimal noise like "20035.0" is truncated to the integer part.
func (r *FlightCodeRule) seedCode(t *models.Table) (int, error) {
	for _, rec := range t.Records {
		raw, ok := rec[models.ColFlightCodes].(string)
		if !ok || raw == "" {
			continue
		}

		val, err := cast.ToFloat64E(raw)
		if err != nil {
			continue
		}

		return int(val), nil
	}

	return 0, ErrNoSeedFlightCode
}
