package strategy

import (
	"fmt"
	"math"

	"StockStress/internal/model"
)

// Band thresholds. Comparisons are strict: 70.0 and 30.0 both land in
// the neutral band.
const (
	OverboughtAbove = 70.0
	OversoldBelow   = 30.0
)

// Classify maps the most recent RSI value to a signal band. It is a
// pure function over the extended-real domain: NaN means the value was
// never defined and yields UNDETERMINED rather than an error.
func Classify(lastRSI float64) model.Signal {
	switch {
	case math.IsNaN(lastRSI):
		return model.Signal{
			Band:    model.BandUndetermined,
			LastRSI: lastRSI,
			Explanation: "cannot assess: RSI is undefined, typically caused by " +
				"insufficient history or zero net price movement across the lookback window",
		}
	case lastRSI > OverboughtAbove:
		return model.Signal{
			Band:        model.BandOverbought,
			LastRSI:     lastRSI,
			Explanation: fmt.Sprintf("RSI %.2f > %.0f: recent gains dominate, a correction is likely", lastRSI, OverboughtAbove),
		}
	case lastRSI < OversoldBelow:
		return model.Signal{
			Band:        model.BandOversold,
			LastRSI:     lastRSI,
			Explanation: fmt.Sprintf("RSI %.2f < %.0f: recent losses dominate, a bounce is likely", lastRSI, OversoldBelow),
		}
	default:
		return model.Signal{
			Band:        model.BandNeutral,
			LastRSI:     lastRSI,
			Explanation: fmt.Sprintf("RSI %.2f within [%.0f, %.0f]: balanced market, no signal", lastRSI, OversoldBelow, OverboughtAbove),
		}
	}
}
