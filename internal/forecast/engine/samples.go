package engine

import (
	"math"

	dErrors "foresight/pkg/domain-errors"
)

// maxSamples bounds SampleYears so a tiny step cannot exhaust memory.
const maxSamples = 10_000

// SampleYears returns from, from+step, ... up to and including to. Values are
// computed by multiplication rather than accumulation so quarters stay exact.
func SampleYears(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "sample bounds must be finite numbers")
		}
	}
	if to < from {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "sample range %g..%g is reversed", from, to)
	}
	if step <= 0 {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "sample step must be positive (got %g)", step)
	}

	// Counted in float64 first so huge spans or tiny steps cannot overflow int.
	count := math.Floor((to-from)/step+1e-9) + 1
	if math.IsNaN(count) || math.IsInf(count, 0) || count > maxSamples {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "sample range %g..%g step %g exceeds %d points", from, to, step, maxSamples)
	}
	n := int(count)
	years := make([]float64, n)
	for i := range years {
		years[i] = from + float64(i)*step
	}
	return years, nil
}
