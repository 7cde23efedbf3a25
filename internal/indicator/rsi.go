package indicator

import (
	"fmt"
	"math"
)

// rsSaturation stands in for the undefined gain/loss ratio whenever
// the average loss is zero, keeping the RSI formula total. It applies
// even when the average gain is also zero: a perfectly flat window
// yields RS = 100 and therefore RSI of 100 - 100/101 (~99.0099), never
// exactly 100. Counter-intuitive for flat markets, but it is the
// established output of this pipeline; do not "fix" it to 50.
const rsSaturation = 100.0

// RelativeStrength computes the elementwise ratio of the aligned
// average gains and losses, applying the zero-loss saturation. NaN
// positions stay NaN.
func RelativeStrength(avgGain, avgLoss []float64) []float64 {
	rs := make([]float64, len(avgGain))
	for i := range rs {
		switch {
		case math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]):
			rs[i] = math.NaN()
		case avgLoss[i] == 0:
			rs[i] = rsSaturation
		default:
			rs[i] = avgGain[i] / avgLoss[i]
		}
	}
	return rs
}

// RSIFromRS maps relative strength onto the bounded [0,100] oscillator
// scale: RSI = 100 - 100/(1+RS).
func RSIFromRS(rs []float64) []float64 {
	rsi := make([]float64, len(rs))
	for i, v := range rs {
		if math.IsNaN(v) {
			rsi[i] = math.NaN()
			continue
		}
		rsi[i] = 100.0 - 100.0/(1.0+v)
	}
	return rsi
}

// ComputeRSI runs the full chain over the closing prices: delta ->
// gain/loss split -> exponential smoothing -> RS -> RSI. The output is
// aligned back onto the price index (same length as closes), with NaN
// at every position where the smoothing window has not filled.
//
// Returns ErrInvalidParameter for period < 1 and ErrInsufficientData
// for fewer than 2 prices. A history shorter than period+1 prices is
// valid and produces an all-NaN column.
func ComputeRSI(closes []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: period must be >= 1, got %d", ErrInvalidParameter, period)
	}

	deltas, err := Deltas(closes)
	if err != nil {
		return nil, err
	}

	gains, losses := SplitGainLoss(deltas)
	for i, l := range losses {
		losses[i] = math.Abs(l) // average over magnitudes
	}

	avgGain, err := SmoothEWMA(gains, period)
	if err != nil {
		return nil, err
	}
	avgLoss, err := SmoothEWMA(losses, period)
	if err != nil {
		return nil, err
	}
	avgGain, avgLoss = AlignDefined(avgGain, avgLoss)

	rsi := RSIFromRS(RelativeStrength(avgGain, avgLoss))

	// Merge back against the original price index: position 0 has no
	// delta, the rest shift by one.
	out := make([]float64, len(closes))
	out[0] = math.NaN()
	copy(out[1:], rsi)
	return out, nil
}
