package calculator

import (
	"fmt"

	"FolioLens/internal/model"
)

// Summarize computes the run's summary statistics from a non-empty series.
// Years come from the request window, not from the first and last bar.
func Summarize(series *model.PriceSeries) (*model.SummaryStats, error) {
	if series.Empty() {
		return nil, ErrEmptySeries
	}
	closes := series.Closes()
	stats := &model.SummaryStats{
		InitialPrice: closes[0],
		FinalPrice:   closes[len(closes)-1],
		Years:        YearsBetween(series.Start, series.End),
	}

	total, err := TotalReturn(closes)
	if err != nil {
		return nil, fmt.Errorf("total return: %w", err)
	}
	stats.TotalReturnPct = total

	annual, err := AnnualizedReturn(closes, stats.Years)
	if err != nil {
		return nil, fmt.Errorf("annualized return: %w", err)
	}
	stats.AnnualizedReturnPct = annual * 100

	gm, err := GeometricMean(closes)
	if err != nil {
		return nil, err
	}
	stats.GeometricMeanClose = gm

	return stats, nil
}
