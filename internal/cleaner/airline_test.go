package cleaner

import (
	"regexp"
	"testing"

	"flightprep/internal/models"
)

func airlineTable(values ...string) *models.Table {
	t := models.NewTable([]string{models.ColAirline})

	for _, v := range values {
		t.Records = append(t.Records, models.Record{models.ColAirline: v})
	}

	return t
}

func TestAirlineRule_Apply(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Air Canada (!)", "Air Canada"},
		{"<Air France> (12)", "Air France"},
		{"(Porter Airways. )", "Porter Airways"},
		{"12. Air France", "Air France"},
		{"Lufthansa", "Lufthansa"},
		{"", ""},
		{"   KLM   ", "KLM"},
	}

	rule := NewAirlineRule()

	for _, tc := range cases {
		tbl := airlineTable(tc.input)

		if err := rule.Apply(tbl); err != nil {
			t.Fatalf("Apply(%q) returned unexpected error: %v", tc.input, err)
		}

		if got := tbl.Records[0][models.ColAirline]; got != tc.want {
			t.Errorf("Apply(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// Cleaned airline names must never contain digits or punctuation, and must
// have no edge whitespace, whatever the input.
func TestAirlineRule_Apply_OutputCharset(t *testing.T) {
	inputs := []string{
		"A!@#$%^&*()ir",
		"99 Balloons 99",
		"\tEdgeé Case 4\n",
		"_underscores_survive_",
	}

	rule := NewAirlineRule()
	forbidden := regexp.MustCompile(`[^\w\s]|\d`)

	for _, input := range inputs {
		tbl := airlineTable(input)

		if err := rule.Apply(tbl); err != nil {
			t.Fatalf("Apply(%q) returned unexpected error: %v", input, err)
		}

		got := tbl.Records[0][models.ColAirline].(string)

		if forbidden.MatchString(got) {
			t.Errorf("Apply(%q) = %q, still contains forbidden characters", input, got)
		}

		if len(got) > 0 && (got[0] == ' ' || got[len(got)-1] == ' ') {
			t.Errorf("Apply(%q) = %q, has edge whitespace", input, got)
		}
	}
}
