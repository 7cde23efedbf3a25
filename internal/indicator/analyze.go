package indicator

import (
	"fmt"

	"StockStress/internal/model"
)

// Analyze runs the RSI pipeline over a fetched price series and
// returns a new table carrying the original index plus the RSI column.
// The input series is not modified; repeated calls on the same series
// produce bit-identical tables.
func Analyze(series *model.PriceSeries, period int) (*model.RSITable, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: period must be >= 1, got %d", ErrInvalidParameter, period)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	rsi, err := ComputeRSI(series.Closes(), period)
	if err != nil {
		return nil, err
	}

	points := make([]model.RSIPoint, series.Len())
	for i, p := range series.Points {
		points[i] = model.RSIPoint{Time: p.Time, Close: p.Close, RSI: rsi[i]}
	}
	return &model.RSITable{Symbol: series.Symbol, Period: period, Points: points}, nil
}
