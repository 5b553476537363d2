// Package exporter serializes cleaned tables to their output forms.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"flightprep/internal/models"
	"flightprep/pkg/utils"
)

// WriteCSV writes the table as CSV: one header row, then one row per record.
// Delay lists render as "[a, b, c]", flight codes as plain integers.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range t.Records {
		row := make([]string, 0, len(t.Columns))

		for _, col := range t.Columns {
			cell, err := formatCell(rec[col])
			if err != nil {
				return fmt.Errorf("row %d, column %s: %w", i, col, err)
			}

			row = append(row, cell)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// RenderCSV returns the CSV serialization as bytes.
func RenderCSV(t *models.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SaveCSV writes the table to a file and returns the bytes written, so the
// caller can hash them for the manifest.
func SaveCSV(path string, t *models.Table) ([]byte, error) {
	data, err := RenderCSV(t)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return data, nil
}

// formatCell renders a single cell value for output.
func formatCell(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case []int:
		return utils.FormatIntList(val), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", v)
	}
}
