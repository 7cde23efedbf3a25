package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockStress/internal/model"
)

func dailySeries(symbol string, closes []float64) *model.PriceSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Close: c}
	}
	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
}

func TestAnalyze(t *testing.T) {
	t.Run("augments the price index with an RSI column", func(t *testing.T) {
		series := dailySeries("NVDA", monotone(100, 1, 25))

		table, err := Analyze(series, 14)
		require.NoError(t, err)
		require.Len(t, table.Points, series.Len())
		assert.Equal(t, "NVDA", table.Symbol)
		assert.Equal(t, 14, table.Period)

		for i, p := range table.Points {
			assert.Equal(t, series.Points[i].Time, p.Time)
			assert.Equal(t, series.Points[i].Close, p.Close)
		}
		// Leading positions undefined, the rest defined.
		assert.True(t, math.IsNaN(table.Points[0].RSI))
		assert.False(t, math.IsNaN(table.LastRSI()))
		assert.Equal(t, series.Len()-14, table.DefinedCount())
	})

	t.Run("does not mutate the input series", func(t *testing.T) {
		series := dailySeries("NVDA", monotone(100, 1, 25))
		before := series.Closes()

		_, err := Analyze(series, 14)
		require.NoError(t, err)

		assert.Equal(t, before, series.Closes())
	})

	t.Run("rejects non-chronological timestamps", func(t *testing.T) {
		series := dailySeries("NVDA", monotone(100, 1, 25))
		series.Points[3].Time = series.Points[10].Time // duplicate out of order

		_, err := Analyze(series, 14)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("rejects duplicate timestamps", func(t *testing.T) {
		series := dailySeries("NVDA", monotone(100, 1, 25))
		series.Points[5].Time = series.Points[4].Time

		_, err := Analyze(series, 14)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("LastRSI is NaN for short history", func(t *testing.T) {
		series := dailySeries("NVDA", monotone(100, 1, 8))

		table, err := Analyze(series, 14)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(table.LastRSI()))
		assert.Equal(t, 0, table.DefinedCount())
	})
}
