package collector

import (
	"fmt"
	"log"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"FolioLens/internal/model"
)

// FinanceGoFetcher implements Fetcher on top of the finance-go chart client.
// The chart client carries no corporate events, so Dividends and StockSplits
// stay zero with this provider.
type FinanceGoFetcher struct {
	AutoAdjust bool
}

func NewFinanceGoFetcher(autoAdjust bool) *FinanceGoFetcher {
	return &FinanceGoFetcher{AutoAdjust: autoAdjust}
}

func (f *FinanceGoFetcher) Name() string { return "finance-go" }

// toDatetime keeps the exact instant; a bare Year/Month/Day is resolved to
// 09:30 local by the client and shifts the window.
func toDatetime(t time.Time) *datetime.Datetime {
	return datetime.New(&t)
}

func (f *FinanceGoFetcher) FetchDailyRange(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    toDatetime(start),
		End:      toDatetime(end),
	}

	var bars []model.OHLCV
	unadjusted := 0
	iter := chart.Get(params)
	for iter.Next() {
		b := iter.Bar()
		open, _ := b.Open.Float64()
		high, _ := b.High.Float64()
		low, _ := b.Low.Float64()
		cls, _ := b.Close.Float64()
		adj, _ := b.AdjClose.Float64()
		bar := model.OHLCV{
			Time:     time.Unix(int64(b.Timestamp), 0),
			Open:     open,
			High:     high,
			Low:      low,
			Close:    cls,
			AdjClose: adj,
			Volume:   float64(b.Volume),
		}
		if f.AutoAdjust && !adjustBar(&bar) {
			unadjusted++
		}
		bars = append(bars, bar)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go chart: %w", err)
	}
	if unadjusted > 0 {
		log.Printf("[WARN] finance-go %s: %d of %d bars have no adjusted close and keep raw prices", symbol, unadjusted, len(bars))
	}
	return bars, nil
}
