package collector

import (
	"fmt"
	"time"

	"StockStress/internal/indicator"
	"StockStress/internal/model"
	"StockStress/internal/strategy"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series *model.PriceSeries
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol, _ string) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return GenerateMockSeries(symbol, 100.0, 60), nil
}

// GenerateMockSeries builds a gently trending daily series ending today.
func GenerateMockSeries(symbol string, basePrice float64, count int) *model.PriceSeries {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
}

// Collector orchestrates data fetching, RSI computation, and
// classification for one symbol.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Assess fetches the history for the given range, runs the RSI
// pipeline with the given lookback period, and classifies the latest
// value. Fail-fast: any stage error aborts with no partial output.
func (c *Collector) Assess(period string, rsiPeriod int) (*model.Assessment, error) {
	series, err := c.Fetcher.FetchHistory(c.Symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s history: %w", c.Symbol, err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("fetch %s history: %w", c.Symbol, ErrNoData)
	}

	table, err := indicator.Analyze(series, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute RSI for %s: %w", c.Symbol, err)
	}

	return &model.Assessment{
		Symbol:      c.Symbol,
		Range:       period,
		Period:      rsiPeriod,
		Table:       table,
		Signal:      strategy.Classify(table.LastRSI()),
		GeneratedAt: time.Now(),
	}, nil
}
