// Package models defines the tabular data structures shared across the pipeline.
package models

// Column names of the flight dataset.
const (
	ColAirline     = "Airline Code"
	ColDelayTimes  = "DelayTimes"
	ColFlightCodes = "FlightCodes"
	ColRoute       = "To_From"
	ColFrom        = "From"
	ColTo          = "To"
)

// Record is one row of a Table, keyed by column name. Values start out as the
// raw strings produced by parsing; cleaning replaces them with typed values
// (int for flight codes, []int for delay lists).
type Record map[string]any

// Table is an ordered collection of Records sharing one column set.
// Column order is significant for serialization; record order is input order.
type Table struct {
	Columns []string
	Records []Record
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}

	return false
}

// AddColumn declares a new column at the end of the column order.
// Adding an already-declared column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}

	t.Columns = append(t.Columns, name)
}

// DropColumn removes the column declaration and deletes its value from every record.
func (t *Table) DropColumn(name string) {
	cols := t.Columns[:0]

	for _, col := range t.Columns {
		if col != name {
			cols = append(cols, col)
		}
	}

	t.Columns = cols

	for _, rec := range t.Records {
		delete(rec, name)
	}
}

// Clone returns a deep copy of the table. Cleaning operates on a clone so the
// caller's pre-clean table is never mutated through aliasing.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Records = make([]Record, 0, len(t.Records))

	for _, rec := range t.Records {
		cp := make(Record, len(rec))

		for k, v := range rec {
			if ints, ok := v.([]int); ok {
				cp[k] = append([]int(nil), ints...)

				continue
			}

			cp[k] = v
		}

		out.Records = append(out.Records, cp)
	}

	return out
}
