package model

import "time"

// OHLCV represents a single daily price bar.
type OHLCV struct {
	Time        time.Time
	Open        float64
	High        float64
	Low         float64
	Close       float64
	AdjClose    float64
	Volume      float64
	Dividends   float64
	StockSplits float64
}

// PriceSeries holds the raw history returned by a provider for [Start, End).
type PriceSeries struct {
	Symbol    string
	Start     time.Time
	End       time.Time
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the provider returned no bars.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Bars) == 0
}

// Closes returns the closing prices in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// DerivedRow is a bar plus its percentage change from the previous close.
// HasReturn is false for the first row of a series.
type DerivedRow struct {
	OHLCV
	DailyReturn float64
	HasReturn   bool
}

// DerivedSeries is a PriceSeries augmented with daily returns.
type DerivedSeries struct {
	Symbol string
	Start  time.Time
	End    time.Time
	Rows   []DerivedRow
}

// SummaryStats holds the per-run scalar results.
type SummaryStats struct {
	InitialPrice        float64
	FinalPrice          float64
	TotalReturnPct      float64
	AnnualizedReturnPct float64
	GeometricMeanClose  float64
	Years               float64
}
