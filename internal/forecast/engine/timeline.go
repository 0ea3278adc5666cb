package engine

import (
	"slices"

	"foresight/internal/forecast/models"
	dErrors "foresight/pkg/domain-errors"
)

// TimelineRow is one Gantt bar: a domain's journey from BaseYear to its
// integration year.
type TimelineRow struct {
	Label       string
	Domain      string
	Description string
	Start       int
	End         int
}

// BuildTimeline returns one row per record ordered by integration year. Ties
// keep catalog order.
func BuildTimeline(records []*models.Record) ([]TimelineRow, error) {
	rows := make([]TimelineRow, 0, len(records))
	for _, r := range records {
		end, ok := r.IntegrationYear()
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeConfiguration, "%s has no integration year", r.Name)
		}
		rows = append(rows, TimelineRow{
			Label:       r.Label(),
			Domain:      r.Domain,
			Description: r.Description,
			Start:       models.BaseYear,
			End:         end,
		})
	}
	slices.SortStableFunc(rows, func(a, b TimelineRow) int {
		return a.End - b.End
	})
	return rows, nil
}
