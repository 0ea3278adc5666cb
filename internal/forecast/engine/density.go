package engine

import (
	"foresight/internal/forecast/models"
	dErrors "foresight/pkg/domain-errors"
)

// YearRange is an inclusive span of whole years.
type YearRange struct {
	From int
	To   int
}

// maxYears bounds the width of a density range.
const maxYears = 1_000

// Len is the number of years in the range, 0 when reversed. It is computed in
// uint64 so the full int range cannot wrap.
func (r YearRange) Len() uint64 {
	if r.To < r.From {
		return 0
	}
	return uint64(r.To) - uint64(r.From) + 1
}

// Years lists every year in the range. Ranges wider than maxYears yield nil.
func (r YearRange) Years() []int {
	if n := r.Len(); n == 0 || n > maxYears {
		return nil
	}
	years := make([]int, 0, r.To-r.From+1)
	for y := r.From; y <= r.To; y++ {
		years = append(years, y)
	}
	return years
}

// Density is a domain-by-year table of milestone counts. Counts[i][j] belongs
// to Domains[i] and Years[j].
type Density struct {
	Domains []string
	Years   []int
	Counts  [][]int
}

// ComputeMilestoneDensity counts, for each record and each year in span, the
// milestone entries keyed to exactly that year.
func ComputeMilestoneDensity(records []*models.Record, span YearRange) (*Density, error) {
	if span.To < span.From {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "year range %d..%d is reversed", span.From, span.To)
	}
	if n := span.Len(); n == 0 || n > maxYears {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "year range %d..%d spans more than %d years", span.From, span.To, maxYears)
	}

	years := span.Years()
	d := &Density{
		Domains: make([]string, 0, len(records)),
		Years:   years,
		Counts:  make([][]int, 0, len(records)),
	}
	for _, r := range records {
		row := make([]int, len(years))
		for j, year := range years {
			// Counted rather than looked up so merged duplicate-year entries
			// would still add up.
			for y := range r.YearlyMilestones {
				if y == year {
					row[j]++
				}
			}
		}
		d.Domains = append(d.Domains, r.Name)
		d.Counts = append(d.Counts, row)
	}
	return d, nil
}
