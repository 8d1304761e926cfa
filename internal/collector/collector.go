package collector

import (
	"log"
	"strings"
	"time"

	"FolioLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  []model.OHLCV
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyRange(_ string, _, _ time.Time) ([]model.OHLCV, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// Collector resolves the trailing window and fetches one series per ticker.
type Collector struct {
	Fetcher Fetcher
	Years   int
	Now     func() time.Time
}

// NewCollector creates a new Collector over a trailing window of the given years.
func NewCollector(fetcher Fetcher, years int) *Collector {
	return &Collector{Fetcher: fetcher, Years: years, Now: time.Now}
}

// Window returns [now - years*365 days, now).
func (c *Collector) Window() (start, end time.Time) {
	end = c.Now()
	start = end.Add(-time.Duration(c.Years*365) * 24 * time.Hour)
	return start, end
}

// Collect fetches the trailing window for symbol. Provider failures are logged
// and reported as an empty series; callers must check Empty before using it.
func (c *Collector) Collect(symbol string) *model.PriceSeries {
	symbol = strings.TrimSpace(symbol)
	start, end := c.Window()
	series := &model.PriceSeries{
		Symbol:    symbol,
		Start:     start,
		End:       end,
		FetchedAt: time.Now(),
	}

	bars, err := c.Fetcher.FetchDailyRange(symbol, start, end)
	if err != nil {
		log.Printf("[WARN] %s fetch %s: %v", c.Fetcher.Name(), symbol, err)
		return series
	}
	series.Bars = bars
	log.Printf("[INFO] %s returned %d bars for %s", c.Fetcher.Name(), len(bars), symbol)
	return series
}
