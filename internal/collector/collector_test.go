package collector

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockStress/internal/model"
)

func seriesFromCloses(symbol string, closes []float64) *model.PriceSeries {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Close: c}
	}
	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}

func TestCollectorAssess(t *testing.T) {
	t.Run("rising series classifies overbought", func(t *testing.T) {
		col := NewCollector(&MockFetcher{Series: seriesFromCloses("NVDA", risingCloses(30))}, "NVDA")

		a, err := col.Assess("1y", 14)
		require.NoError(t, err)

		assert.Equal(t, "NVDA", a.Symbol)
		assert.Equal(t, "1y", a.Range)
		assert.Equal(t, 14, a.Period)
		assert.Equal(t, model.BandOverbought, a.Signal.Band)
		assert.InDelta(t, 100.0-100.0/101.0, a.Signal.LastRSI, 1e-9)
		assert.Len(t, a.Table.Points, 30)
	})

	t.Run("flat series classifies overbought, not undetermined", func(t *testing.T) {
		flat := make([]float64, 25)
		for i := range flat {
			flat[i] = 100
		}
		col := NewCollector(&MockFetcher{Series: seriesFromCloses("FLAT", flat)}, "FLAT")

		a, err := col.Assess("1y", 14)
		require.NoError(t, err)

		// Zero net movement saturates RS at 100; the resulting ~99.01
		// lands in the overbought band even though nothing moved.
		assert.Equal(t, model.BandOverbought, a.Signal.Band)
		assert.InDelta(t, 100.0-100.0/101.0, a.Signal.LastRSI, 1e-9)
	})

	t.Run("short history classifies undetermined", func(t *testing.T) {
		col := NewCollector(&MockFetcher{Series: seriesFromCloses("NVDA", risingCloses(5))}, "NVDA")

		a, err := col.Assess("1mo", 14)
		require.NoError(t, err)
		assert.Equal(t, model.BandUndetermined, a.Signal.Band)
		assert.True(t, math.IsNaN(a.Signal.LastRSI))
		assert.NotEmpty(t, a.Signal.Explanation)
	})

	t.Run("upstream no-data surfaces immediately", func(t *testing.T) {
		col := NewCollector(&MockFetcher{Err: ErrNoData}, "NOPE")

		_, err := col.Assess("1y", 14)
		require.ErrorIs(t, err, ErrNoData)
	})

	t.Run("empty series is never computed on", func(t *testing.T) {
		col := NewCollector(&MockFetcher{Series: &model.PriceSeries{Symbol: "EMPTY"}}, "EMPTY")

		_, err := col.Assess("1y", 14)
		require.ErrorIs(t, err, ErrNoData)
	})

	t.Run("default mock series assesses cleanly", func(t *testing.T) {
		col := NewCollector(&MockFetcher{}, "MOCK")

		a, err := col.Assess("6mo", 14)
		require.NoError(t, err)
		assert.NotEqual(t, model.BandUndetermined, a.Signal.Band)
	})
}
