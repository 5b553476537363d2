package cleaner

import (
	"errors"
	"fmt"

	"flightprep/internal/models"
)

// Validation errors.
var (
	ErrNilTable         = errors.New("table is nil")
	ErrMissingRawColumn = errors.New("raw table is missing required column")
	ErrCellNotString    = errors.New("raw cell is not a string")
)

// Validator checks that a raw table has the shape the rules require.
type Validator struct {
	required []string
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		required: []string{
			models.ColAirline,
			models.ColDelayTimes,
			models.ColFlightCodes,
			models.ColRoute,
		},
	}
}

// Validate checks if a raw table meets the cleaning preconditions: every
// required column is declared and every required cell is a raw string.
func (v *Validator) Validate(t *models.Table) error {
	if t == nil {
		return ErrNilTable
	}

	for _, col := range v.required {
		if !t.HasColumn(col) {
			return fmt.Errorf("%w: %s", ErrMissingRawColumn, col)
		}
	}

	for i, rec := range t.Records {
		for _, col := range v.required {
			if _, ok := rec[col].(string); !ok {
				return fmt.Errorf("row %d: %w: %s is %T", i, ErrCellNotString, col, rec[col])
			}
		}
	}

	return nil
}
