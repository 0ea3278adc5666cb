package engine

import (
	"math"

	"foresight/internal/forecast/models"
	dErrors "foresight/pkg/domain-errors"
)

// Curves maps a record name to progress percentages aligned with the sample
// years they were computed for.
type Curves map[string][]float64

// ComputeProgress evaluates each record's progress curve at every sample year.
//
// An empty record slice yields an empty mapping. Empty years or an unknown mode
// fail with CodeInvalidInput; a record without a usable integration year fails
// with CodeConfiguration. No partial result is returned on failure.
func ComputeProgress(records []*models.Record, years []float64, mode Mode) (Curves, error) {
	if len(years) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "sample years must not be empty")
	}
	if mode != ModeLogistic && mode != ModeLinear {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown progress mode %q", mode)
	}

	curves := make(Curves, len(records))
	for _, r := range records {
		end, ok := r.IntegrationYear()
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeConfiguration, "%s has no integration year", r.Name)
		}

		values := make([]float64, len(years))
		for i, y := range years {
			var (
				v   float64
				err error
			)
			if mode == ModeLogistic {
				v, err = LogisticProgress(y, end)
			} else {
				v, err = LinearProgress(y, end)
			}
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeOf(err), r.Name+": "+dErrors.Message(err))
			}
			values[i] = v
		}
		curves[r.Name] = values
	}
	return curves, nil
}

// LogisticProgress is the S-curve adoption percentage at year y for a domain
// integrating in integrationYear. It is 0 before BaseYear, 100 from the
// integration year on, and 100/(1+e^(-k(x-0.5))) in between, where x is the
// fraction of the BaseYear..integrationYear span already elapsed.
func LogisticProgress(y float64, integrationYear int) (float64, error) {
	if integrationYear <= models.BaseYear {
		return 0, dErrors.Newf(dErrors.CodeConfiguration,
			"integration year %d leaves no span after base year %d", integrationYear, models.BaseYear)
	}
	switch {
	case y < models.BaseYear:
		return 0, nil
	case y >= float64(integrationYear):
		return 100, nil
	}
	x := elapsed(y, integrationYear)
	return 100 / (1 + math.Exp(-LogisticSteepness*(x-0.5))), nil
}

// LinearProgress interpolates straight from 0 at BaseYear to 100 at the
// integration year. It is undefined before BaseYear.
func LinearProgress(y float64, integrationYear int) (float64, error) {
	if y < models.BaseYear {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput,
			"linear progress is undefined before %d (got %g)", models.BaseYear, y)
	}
	if y >= float64(integrationYear) {
		return 100, nil
	}
	return clamp(100*elapsed(y, integrationYear), 0, 100), nil
}

func elapsed(y float64, integrationYear int) float64 {
	return (y - models.BaseYear) / float64(integrationYear-models.BaseYear)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
