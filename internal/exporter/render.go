package exporter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"flightprep/internal/models"
	"flightprep/pkg/utils"
)

// maxCellWidth caps a rendered cell so one long value cannot blow up the
// whole preview.
const maxCellWidth = 48

// RenderTable renders the table as an aligned text table for console display.
// Column widths use display width, not byte length, so wide runes line up.
func RenderTable(t *models.Table) string {
	cells := make([][]string, 0, t.Len()+1)
	cells = append(cells, t.Columns)

	for _, rec := range t.Records {
		row := make([]string, 0, len(t.Columns))

		for _, col := range t.Columns {
			cell, err := formatCell(rec[col])
			if err != nil {
				cell = "?"
			}

			row = append(row, utils.TruncateString(utils.NormalizeWhitespace(cell), maxCellWidth))
		}

		cells = append(cells, row)
	}

	// Column widths by display width
	widths := make([]int, len(t.Columns))

	for _, row := range cells {
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder

	for i, row := range cells {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("  ")
			}

			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(cell)))
		}

		sb.WriteString("\n")

		// Separator under the header row
		if i == 0 {
			for j, w := range widths {
				if j > 0 {
					sb.WriteString("  ")
				}

				sb.WriteString(strings.Repeat("-", w))
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}
