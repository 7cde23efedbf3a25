package model

import (
	"fmt"
	"time"
)

// PricePoint is a single closing price observation.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds the raw price history for one symbol, in
// chronological order. It is the source of truth for the RSI pipeline
// and is never mutated after fetching.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int { return len(s.Points) }

// Closes returns the closing prices as a new slice.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Validate checks that timestamps are strictly ascending (no
// duplicates, no reordering).
func (s *PriceSeries) Validate() error {
	for i := 1; i < len(s.Points); i++ {
		if !s.Points[i].Time.After(s.Points[i-1].Time) {
			return fmt.Errorf("price series not chronological at index %d (%s then %s)",
				i, s.Points[i-1].Time.Format(time.RFC3339), s.Points[i].Time.Format(time.RFC3339))
		}
	}
	return nil
}
