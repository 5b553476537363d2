package utils

import "testing"

func TestFormatIntList(t *testing.T) {
	cases := []struct {
		want  string
		input []int
	}{
		{"[]", nil},
		{"[]", []int{}},
		{"[21]", []int{21}},
		{"[21, 40]", []int{21, 40}},
		{"[60, 22, 87]", []int{60, 22, 87}},
	}

	for _, tc := range cases {
		if got := FormatIntList(tc.input); got != tc.want {
			t.Errorf("FormatIntList(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  Air   Canada \t X "); got != "Air Canada X" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString(short) = %q", got)
	}

	if got := TruncateString("somethinglong", 4); got != "some..." {
		t.Errorf("TruncateString = %q, want some...", got)
	}
}
