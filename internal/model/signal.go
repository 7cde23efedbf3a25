package model

import "time"

// SignalBand classifies the latest RSI value.
type SignalBand string

const (
	BandOverbought   SignalBand = "OVERBOUGHT"
	BandOversold     SignalBand = "OVERSOLD"
	BandNeutral      SignalBand = "NEUTRAL"
	BandUndetermined SignalBand = "UNDETERMINED"
)

// Signal is the classification of the most recent RSI value.
type Signal struct {
	Band        SignalBand
	LastRSI     float64 // NaN when undetermined
	Explanation string
}

// Assessment is the full output of one pipeline run.
type Assessment struct {
	Symbol      string
	Range       string // history range requested from the data source, e.g. "1y"
	Period      int    // RSI lookback period
	Table       *RSITable
	Signal      Signal
	GeneratedAt time.Time
}
