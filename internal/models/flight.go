package models

import "fmt"

// Flight is the typed view of one cleaned record. It is only meaningful after
// the cleaner has run: raw tables still hold every field as a string.
type Flight struct {
	Airline    string
	From       string
	To         string
	FlightCode int
	DelayTimes []int
}

// Flight assembles the typed view of record i. It fails if a cell is missing
// or still holds a raw (untyped) value.
func (t *Table) Flight(i int) (Flight, error) {
	if i < 0 || i >= len(t.Records) {
		return Flight{}, fmt.Errorf("row %d out of range (table has %d rows)", i, len(t.Records))
	}

	rec := t.Records[i]

	f := Flight{}

	var ok bool

	if f.Airline, ok = rec[ColAirline].(string); !ok {
		return Flight{}, fmt.Errorf("row %d: %s is %T, want string", i, ColAirline, rec[ColAirline])
	}

	if f.From, ok = rec[ColFrom].(string); !ok {
		return Flight{}, fmt.Errorf("row %d: %s is %T, want string", i, ColFrom, rec[ColFrom])
	}

	if f.To, ok = rec[ColTo].(string); !ok {
		return Flight{}, fmt.Errorf("row %d: %s is %T, want string", i, ColTo, rec[ColTo])
	}

	if f.FlightCode, ok = rec[ColFlightCodes].(int); !ok {
		return Flight{}, fmt.Errorf("row %d: %s is %T, want int", i, ColFlightCodes, rec[ColFlightCodes])
	}

	if f.DelayTimes, ok = rec[ColDelayTimes].([]int); !ok {
		return Flight{}, fmt.Errorf("row %d: %s is %T, want []int", i, ColDelayTimes, rec[ColDelayTimes])
	}

	return f, nil
}
