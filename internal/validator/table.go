// Package validator re-checks the invariants a cleaned table must satisfy.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"flightprep/internal/config"
	"flightprep/internal/models"
)

// ValidationError represents one invariant violation with row context.
type ValidationError struct {
	Column  string
	Value   string
	Message string
	Row     int
}

// ValidationStats contains validation statistics.
type ValidationStats struct {
	TotalRows           int
	ValidRows           int
	InvalidRows         int
	RowsWithEmptyDelays int
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// TableValidator checks cleaned tables: airline names carry no digits or
// punctuation and no edge whitespace, flight codes follow the configured
// progression, and route halves are fully uppercased.
type TableValidator struct {
	cfg *config.Config
	// Characters the airline rule should have removed.
	residuePattern *regexp.Regexp
}

// NewTableValidator creates a new validator.
func NewTableValidator(cfg *config.Config) *TableValidator {
	return &TableValidator{
		cfg:            cfg,
		residuePattern: regexp.MustCompile(`[^\w\s]|\d`),
	}
}

// ValidateTable inspects every row of a cleaned (pre-projection) table.
func (v *TableValidator) ValidateTable(t *models.Table) *ValidationResult {
	result := &ValidationResult{
		Stats: ValidationStats{TotalRows: t.Len()},
	}

	startCode := 0
	step := v.cfg.Pipeline.CodeStep

	for i := range t.Records {
		flight, err := t.Flight(i)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Row:     i,
				Message: err.Error(),
			})
			result.Stats.InvalidRows++

			continue
		}

		rowValid := true

		if v.residuePattern.MatchString(flight.Airline) {
			result.Errors = append(result.Errors, ValidationError{
				Row:     i,
				Column:  models.ColAirline,
				Value:   flight.Airline,
				Message: "airline name still contains digits or punctuation",
			})

			rowValid = false
		}

		if strings.TrimSpace(flight.Airline) != flight.Airline {
			result.Errors = append(result.Errors, ValidationError{
				Row:     i,
				Column:  models.ColAirline,
				Value:   flight.Airline,
				Message: "airline name has leading or trailing whitespace",
			})

			rowValid = false
		}

		if i == 0 {
			startCode = flight.FlightCode
		} else if flight.FlightCode != startCode+step*i {
			result.Errors = append(result.Errors, ValidationError{
				Row:     i,
				Column:  models.ColFlightCodes,
				Value:   fmt.Sprintf("%d", flight.FlightCode),
				Message: fmt.Sprintf("flight code breaks the +%d progression", step),
			})

			rowValid = false
		}

		for _, col := range []struct {
			name  string
			value string
		}{
			{models.ColFrom, flight.From},
			{models.ColTo, flight.To},
		} {
			if col.value != strings.ToUpper(col.value) {
				result.Errors = append(result.Errors, ValidationError{
					Row:     i,
					Column:  col.name,
					Value:   col.value,
					Message: "location is not fully uppercased",
				})

				rowValid = false
			}
		}

		if len(flight.DelayTimes) == 0 {
			result.Stats.RowsWithEmptyDelays++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("row %d: no delay samples recorded", i))
		}

		if rowValid {
			result.Stats.ValidRows++
		} else {
			result.Stats.InvalidRows++
		}
	}

	result.IsValid = len(result.Errors) == 0

	return result
}
