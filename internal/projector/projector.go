// Package projector selects and orders the final output columns of a cleaned table.
package projector

import (
	"errors"
	"fmt"

	"flightprep/internal/models"
)

// ErrMissingColumn indicates a broken contract between cleaning and
// projection: the cleaned table lacks a column the output requires.
var ErrMissingColumn = errors.New("cleaned table is missing expected column")

// OutputColumns is the fixed column order of the projected result.
var OutputColumns = []string{
	models.ColAirline,
	models.ColFrom,
	models.ColTo,
	models.ColFlightCodes,
	models.ColDelayTimes,
}

// Projector reduces a cleaned table to the output view.
type Projector struct {
	columns []string
}

// NewProjector creates a projector for the standard output columns.
func NewProjector() *Projector {
	return &Projector{columns: OutputColumns}
}

// Project builds a new table holding exactly the output columns, in order,
// one record per input record with row order preserved.
func (p *Projector) Project(t *models.Table) (*models.Table, error) {
	for _, col := range p.columns {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	out := models.NewTable(p.columns)
	out.Records = make([]models.Record, 0, t.Len())

	for _, rec := range t.Records {
		projected := make(models.Record, len(p.columns))

		for _, col := range p.columns {
			projected[col] = rec[col]
		}

		out.Records = append(out.Records, projected)
	}

	return out, nil
}
