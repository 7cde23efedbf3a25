package indicator

import (
	"fmt"
	"math"
)

// SmoothEWMA computes a cumulative exponentially weighted moving
// average with span = period (most recent observation weighted
// 2/(period+1)). The average runs over the whole history from the
// start of the series, carried as a single recursive accumulator, not
// a re-averaged sliding window. The first period-1 positions of the
// output are NaN: the estimate needs at least period observations
// before it counts as defined.
//
// A series shorter than period is not an error; every output position
// is simply NaN.
func SmoothEWMA(values []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: period must be >= 1, got %d", ErrInvalidParameter, period)
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}

	alpha := 2.0 / (float64(period) + 1.0)
	avg := values[0]
	for i := range values {
		if i > 0 {
			avg = (1-alpha)*avg + alpha*values[i]
		}
		if i >= period-1 {
			out[i] = avg
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// AlignDefined inner-joins two same-index series on their defined
// positions: wherever either side is NaN, both become NaN. The two
// smoothed averages feed a ratio, so a position defined on only one
// side is unusable and dropped from both.
func AlignDefined(a, b []float64) (alignedA, alignedB []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	alignedA = make([]float64, n)
	alignedB = make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			alignedA[i] = math.NaN()
			alignedB[i] = math.NaN()
			continue
		}
		alignedA[i] = a[i]
		alignedB[i] = b[i]
	}
	return alignedA, alignedB
}
