package model

import (
	"math"
	"time"
)

// RSIPoint pairs one price observation with its RSI value. RSI is NaN
// where the smoothing window has not filled yet.
type RSIPoint struct {
	Time  time.Time
	Close float64
	RSI   float64
}

// RSITable is the price series augmented with the RSI column. It
// carries the same index as the input series; a fresh table is built
// on every pipeline run.
type RSITable struct {
	Symbol string
	Period int
	Points []RSIPoint
}

// LastRSI returns the most recent RSI value, NaN when the table is
// empty or the last position is undefined.
func (t *RSITable) LastRSI() float64 {
	if len(t.Points) == 0 {
		return math.NaN()
	}
	return t.Points[len(t.Points)-1].RSI
}

// DefinedCount returns how many positions carry a defined RSI value.
func (t *RSITable) DefinedCount() int {
	n := 0
	for _, p := range t.Points {
		if !math.IsNaN(p.RSI) {
			n++
		}
	}
	return n
}

// Tail returns the last n points (all points when n exceeds the table).
func (t *RSITable) Tail(n int) []RSIPoint {
	if n >= len(t.Points) {
		return t.Points
	}
	return t.Points[len(t.Points)-n:]
}
