package ingest

import (
	"errors"
	"fmt"
	"strings"

	"flightprep/internal/models"
)

// FieldSeparator splits fields within a line. There is no quoting or escaping:
// a separator always splits.
const FieldSeparator = ";"

// Parsing errors.
var (
	ErrEmptyInput         = errors.New("input contains no header line")
	ErrFieldCountMismatch = errors.New("field count mismatch")
)

// Parser turns raw delimited text into a Table.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTable parses raw text into a table. The first line is the header; every
// following non-empty line must have the same field count as the header, keyed
// by header name. Field values are kept verbatim (no trimming); only the input
// as a whole is trimmed before splitting into lines.
func (p *Parser) ParseTable(raw string) (*models.Table, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(trimmed, "\n")
	header := strings.Split(lines[0], FieldSeparator)

	table := models.NewTable(header)

	for i, line := range lines[1:] {
		if line == "" {
			continue
		}

		fields := strings.Split(line, FieldSeparator)
		if len(fields) != len(header) {
			// Line numbers are 1-based over the whole input, header included.
			return nil, fmt.Errorf("line %d: %w: got %d fields, want %d",
				i+2, ErrFieldCountMismatch, len(fields), len(header))
		}

		rec := make(models.Record, len(header))
		for j, name := range header {
			rec[name] = fields[j]
		}

		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// Serialize renders a table back to delimited text, one header line followed
// by one line per record. It is the inverse of ParseTable for inputs without
// extraneous whitespace.
func Serialize(t *models.Table) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(t.Columns, FieldSeparator))

	for _, rec := range t.Records {
		sb.WriteString("\n")

		for j, name := range t.Columns {
			if j > 0 {
				sb.WriteString(FieldSeparator)
			}

			sb.WriteString(fmt.Sprint(rec[name]))
		}
	}

	return sb.String()
}
