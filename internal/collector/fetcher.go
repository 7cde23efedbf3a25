package collector

import (
	"errors"

	"StockStress/internal/model"
)

// ErrNoData reports that the data source returned no rows for the
// requested symbol/period. The pipeline never computes on an empty
// series and never retries; the caller decides what to do next.
var ErrNoData = errors.New("no price data returned")

// Fetcher retrieves the historical closing-price series for a symbol.
// period is a data-source range string such as "6mo" or "1y".
type Fetcher interface {
	FetchHistory(symbol, period string) (*model.PriceSeries, error)
	Name() string
}
