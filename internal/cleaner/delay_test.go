package cleaner

import (
	"testing"

	"flightprep/internal/models"
	"flightprep/pkg/utils"
)

func delayTable(values ...string) *models.Table {
	t := models.NewTable([]string{models.ColDelayTimes})

	for _, v := range values {
		t.Records = append(t.Records, models.Record{models.ColDelayTimes: v})
	}

	return t
}

func TestDelayRule_Apply(t *testing.T) {
	cases := []struct {
		input string
		want  []int
	}{
		{"[21, 40]", []int{21, 40}},
		{"[]", []int{}},
		{"[60, 22, 87]", []int{60, 22, 87}},
		{"", []int{}},
		// Permissive by design: any digit run counts, whatever the syntax.
		{"60 and 22, then 87!", []int{60, 22, 87}},
		{"delay007", []int{7}},
	}

	rule := NewDelayRule()

	for _, tc := range cases {
		tbl := delayTable(tc.input)

		if err := rule.Apply(tbl); err != nil {
			t.Fatalf("Apply(%q) returned unexpected error: %v", tc.input, err)
		}

		got, ok := tbl.Records[0][models.ColDelayTimes].([]int)
		if !ok {
			t.Fatalf("Apply(%q) left cell as %T, want []int", tc.input, tbl.Records[0][models.ColDelayTimes])
		}

		if len(got) != len(tc.want) {
			t.Errorf("Apply(%q) = %v, want %v", tc.input, got, tc.want)

			continue
		}

		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Apply(%q) = %v, want %v", tc.input, got, tc.want)

				break
			}
		}
	}
}

// Re-parsing a rendered delay list yields the same list.
func TestDelayRule_Apply_Idempotent(t *testing.T) {
	rule := NewDelayRule()

	tbl := delayTable("[60, 22, 87]")
	if err := rule.Apply(tbl); err != nil {
		t.Fatalf("Apply returned unexpected error: %v", err)
	}

	first := tbl.Records[0][models.ColDelayTimes].([]int)

	// Render back to text and parse again.
	tbl2 := delayTable(utils.FormatIntList(first))
	if err := rule.Apply(tbl2); err != nil {
		t.Fatalf("second Apply returned unexpected error: %v", err)
	}

	second := tbl2.Records[0][models.ColDelayTimes].([]int)

	if len(first) != len(second) {
		t.Fatalf("re-parse changed length: %v vs %v", first, second)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("re-parse changed values: %v vs %v", first, second)

			break
		}
	}
}
