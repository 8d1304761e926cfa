package collector

import (
	"time"

	"FolioLens/internal/model"
)

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchDailyRange(symbol string, start, end time.Time) ([]model.OHLCV, error)
	Name() string
}
