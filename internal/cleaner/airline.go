package cleaner

import (
	"regexp"
	"strings"

	"flightprep/internal/models"
)

// AirlineRule strips punctuation and digits from airline names.
type AirlineRule struct {
	stripPattern *regexp.Regexp
}

// NewAirlineRule creates a new airline normalization rule.
func NewAirlineRule() *AirlineRule {
	return &AirlineRule{
		// Everything that is neither word-character nor whitespace, plus
		// every digit. Internal whitespace survives.
		stripPattern: regexp.MustCompile(`[^\w\s]|\d`),
	}
}

// Name returns the rule name used in error context.
func (r *AirlineRule) Name() string {
	return "airline normalization"
}

// Apply rewrites the airline column of every record in place.
func (r *AirlineRule) Apply(t *models.Table) error {
	for _, rec := range t.Records {
		raw, ok := rec[models.ColAirline].(string)
		if !ok {
			continue
		}

		rec[models.ColAirline] = strings.TrimSpace(r.stripPattern.ReplaceAllString(raw, ""))
	}

	return nil
}
