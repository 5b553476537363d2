package cleaner

import (
	"fmt"
	"regexp"
	"strconv"

	"flightprep/internal/models"
)

// DelayRule parses the raw delay text into an ordered integer list.
//
// Extraction is deliberately permissive: every maximal digit run anywhere in
// the text is captured, with no validation of bracket or comma syntax.
type DelayRule struct {
	digitPattern *regexp.Regexp
}

// NewDelayRule creates a new delay-list parsing rule.
func NewDelayRule() *DelayRule {
	return &DelayRule{
		digitPattern: regexp.MustCompile(`\d+`),
	}
}

// Name returns the rule name used in error context.
func (r *DelayRule) Name() string {
	return "delay list parsing"
}

// Apply replaces the delay column of every record with its parsed []int.
func (r *DelayRule) Apply(t *models.Table) error {
	for i, rec := range t.Records {
		raw, ok := rec[models.ColDelayTimes].(string)
		if !ok {
			continue
		}

		matches := r.digitPattern.FindAllString(raw, -1)

		delays := make([]int, 0, len(matches))

		for _, m := range matches {
			val, err := strconv.Atoi(m)
			if err != nil {
				return fmt.Errorf("row %d: delay value %q does not fit an int: %w", i, m, err)
			}

			delays = append(delays, val)
		}

		rec[models.ColDelayTimes] = delays
	}

	return nil
}
