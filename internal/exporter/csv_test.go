package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"flightprep/internal/models"
)

func projectedTable() *models.Table {
	t := models.NewTable([]string{
		models.ColAirline,
		models.ColFrom,
		models.ColTo,
		models.ColFlightCodes,
		models.ColDelayTimes,
	})
	t.Records = []models.Record{
		{
			models.ColAirline:     "Air Canada",
			models.ColFrom:        "WATERLOO",
			models.ColTo:          "NEWYORK",
			models.ColFlightCodes: 20015,
			models.ColDelayTimes:  []int{21, 40},
		},
		{
			models.ColAirline:     "Air France",
			models.ColFrom:        "MONTREAL",
			models.ColTo:          "TORONTO",
			models.ColFlightCodes: 20025,
			models.ColDelayTimes:  []int{},
		},
	}

	return t
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(projectedTable())
	if err != nil {
		t.Fatalf("RenderCSV returned unexpected error: %v", err)
	}

	want := "Airline Code,From,To,FlightCodes,DelayTimes\n" +
		"Air Canada,WATERLOO,NEWYORK,20015,\"[21, 40]\"\n" +
		"Air France,MONTREAL,TORONTO,20025,[]\n"

	if string(data) != want {
		t.Errorf("RenderCSV output mismatch\ngot:  %q\nwant: %q", data, want)
	}
}

func TestRenderCSV_UnsupportedCell(t *testing.T) {
	tbl := projectedTable()
	tbl.Records[0][models.ColDelayTimes] = 3.14

	if _, err := RenderCSV(tbl); err == nil {
		t.Error("RenderCSV should fail on an unsupported cell type")
	}
}

func TestSaveCSV(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.csv")

	data, err := SaveCSV(path, projectedTable())
	if err != nil {
		t.Fatalf("SaveCSV returned unexpected error: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(onDisk) != string(data) {
		t.Error("SaveCSV returned bytes differ from file contents")
	}
}
