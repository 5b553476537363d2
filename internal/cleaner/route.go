package cleaner

import (
	"errors"
	"fmt"
	"strings"

	"flightprep/internal/models"
)

// ErrRouteFormat is returned when a route does not split into exactly two parts.
var ErrRouteFormat = errors.New("route does not split into exactly two parts")

// RouteRule decomposes the combined route column into From and To.
type RouteRule struct {
	separator string
}

// NewRouteRule creates a new route decomposition rule.
func NewRouteRule(separator string) *RouteRule {
	return &RouteRule{separator: separator}
}

// Name returns the rule name used in error context.
func (r *RouteRule) Name() string {
	return "route decomposition"
}

// Apply splits every route into uppercase From and To columns and drops the
// combined column.
func (r *RouteRule) Apply(t *models.Table) error {
	for i, rec := range t.Records {
		raw, ok := rec[models.ColRoute].(string)
		if !ok {
			continue
		}

		parts := strings.Split(raw, r.separator)
		if len(parts) != 2 {
			return fmt.Errorf("row %d: %w: %q", i, ErrRouteFormat, raw)
		}

		rec[models.ColFrom] = strings.ToUpper(parts[0])
		rec[models.ColTo] = strings.ToUpper(parts[1])
	}

	t.AddColumn(models.ColFrom)
	t.AddColumn(models.ColTo)
	t.DropColumn(models.ColRoute)

	return nil
}
