package indicator

import "fmt"

// Deltas computes the first differences of the closing prices. The
// result has one entry fewer than the input: the first timestamp has
// no previous close to diff against.
func Deltas(closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInsufficientData, len(closes))
	}
	deltas := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		deltas[i-1] = closes[i] - closes[i-1]
	}
	return deltas, nil
}

// SplitGainLoss partitions deltas into gains (negative moves zeroed)
// and losses (positive moves zeroed, sign kept non-positive). Both
// outputs share the delta index. NaN deltas stay NaN on both sides.
func SplitGainLoss(deltas []float64) (gains, losses []float64) {
	gains = make([]float64, len(deltas))
	losses = make([]float64, len(deltas))
	for i, d := range deltas {
		gains[i] = d
		losses[i] = d
		if d < 0 {
			gains[i] = 0
		}
		if d > 0 {
			losses[i] = 0
		}
	}
	return gains, losses
}
