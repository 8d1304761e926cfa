package calculator

import (
	"errors"
	"math"
	"time"

	"FolioLens/internal/model"
)

// ErrEmptySeries is returned when a computation needs at least one bar.
var ErrEmptySeries = errors.New("empty price series")

// DaysPerYear is the fixed day-count convention used to annualize returns.
const DaysPerYear = 365.25

// DailyReturns computes the percentage change of each close from the previous one.
// The first row never carries a return.
func DailyReturns(series *model.PriceSeries) (*model.DerivedSeries, error) {
	if series.Empty() {
		return nil, ErrEmptySeries
	}
	rows := make([]model.DerivedRow, len(series.Bars))
	for i, b := range series.Bars {
		rows[i].OHLCV = b
		if i == 0 {
			continue
		}
		prev := series.Bars[i-1].Close
		rows[i].DailyReturn = PctChange(prev, b.Close)
		rows[i].HasReturn = true
	}
	return &model.DerivedSeries{
		Symbol: series.Symbol,
		Start:  series.Start,
		End:    series.End,
		Rows:   rows,
	}, nil
}

// PctChange returns (to/from - 1) * 100.
func PctChange(from, to float64) float64 {
	return (to/from - 1) * 100
}

// TotalReturn returns the percentage change between the first and last close.
func TotalReturn(closes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, ErrEmptySeries
	}
	return PctChange(closes[0], closes[len(closes)-1]), nil
}

// YearsBetween counts whole days in the window and divides by DaysPerYear.
func YearsBetween(start, end time.Time) float64 {
	days := math.Floor(end.Sub(start).Hours() / 24)
	return days / DaysPerYear
}

// AnnualizedReturn returns the compound yearly growth rate as a fraction
// (0.07 means 7%).
func AnnualizedReturn(closes []float64, years float64) (float64, error) {
	if len(closes) == 0 {
		return 0, ErrEmptySeries
	}
	if years <= 0 {
		return 0, errors.New("years must be positive")
	}
	ratio := closes[len(closes)-1] / closes[0]
	return math.Pow(ratio, 1/years) - 1, nil
}
