package validator

import (
	"testing"

	"flightprep/internal/config"
	"flightprep/internal/models"
)

func cleanedTable() *models.Table {
	t := models.NewTable([]string{
		models.ColAirline,
		models.ColDelayTimes,
		models.ColFlightCodes,
		models.ColFrom,
		models.ColTo,
	})
	t.Records = []models.Record{
		{
			models.ColAirline:     "Air Canada",
			models.ColDelayTimes:  []int{21, 40},
			models.ColFlightCodes: 20015,
			models.ColFrom:        "WATERLOO",
			models.ColTo:          "NEWYORK",
		},
		{
			models.ColAirline:     "Air France",
			models.ColDelayTimes:  []int{},
			models.ColFlightCodes: 20025,
			models.ColFrom:        "MONTREAL",
			models.ColTo:          "TORONTO",
		},
	}

	return t
}

func newValidator() *TableValidator {
	return NewTableValidator(config.Default())
}

func TestTableValidator_ValidTable(t *testing.T) {
	result := newValidator().ValidateTable(cleanedTable())

	if !result.IsValid {
		t.Fatalf("ValidateTable reported errors on a clean table: %v", result.Errors)
	}

	if result.Stats.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.Stats.ValidRows)
	}

	// Empty delay lists are a warning, not an error.
	if result.Stats.RowsWithEmptyDelays != 1 {
		t.Errorf("RowsWithEmptyDelays = %d, want 1", result.Stats.RowsWithEmptyDelays)
	}

	if len(result.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(result.Warnings))
	}
}

func TestTableValidator_AirlineResidue(t *testing.T) {
	tbl := cleanedTable()
	tbl.Records[0][models.ColAirline] = "Air Canada (!)"

	result := newValidator().ValidateTable(tbl)

	if result.IsValid {
		t.Fatal("ValidateTable accepted an airline with punctuation")
	}

	if result.Stats.InvalidRows != 1 {
		t.Errorf("InvalidRows = %d, want 1", result.Stats.InvalidRows)
	}
}

func TestTableValidator_EdgeWhitespace(t *testing.T) {
	tbl := cleanedTable()
	tbl.Records[1][models.ColAirline] = " Air France"

	result := newValidator().ValidateTable(tbl)

	if result.IsValid {
		t.Fatal("ValidateTable accepted an airline with leading whitespace")
	}
}

func TestTableValidator_BrokenProgression(t *testing.T) {
	tbl := cleanedTable()
	tbl.Records[1][models.ColFlightCodes] = 20099

	result := newValidator().ValidateTable(tbl)

	if result.IsValid {
		t.Fatal("ValidateTable accepted a broken flight-code progression")
	}

	if result.Errors[0].Column != models.ColFlightCodes {
		t.Errorf("error column = %q, want %q", result.Errors[0].Column, models.ColFlightCodes)
	}
}

func TestTableValidator_LowercaseLocation(t *testing.T) {
	tbl := cleanedTable()
	tbl.Records[0][models.ColTo] = "NewYork"

	result := newValidator().ValidateTable(tbl)

	if result.IsValid {
		t.Fatal("ValidateTable accepted a mixed-case location")
	}
}

func TestTableValidator_UntypedCell(t *testing.T) {
	tbl := cleanedTable()
	tbl.Records[0][models.ColFlightCodes] = "20015.0"

	result := newValidator().ValidateTable(tbl)

	if result.IsValid {
		t.Fatal("ValidateTable accepted a raw (uncleaned) cell")
	}
}
