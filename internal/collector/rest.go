package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"FolioLens/internal/model"
)

// RESTFetcher implements Fetcher against a generic JSON bars endpoint:
//
//	GET {BaseURL}/api/v1/bars/daily?symbol=VOO&from=<unix>&to=<unix>
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars endpoint.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	AdjClose  float64 `json:"adj_close"`
	Volume    float64 `json:"volume"`
	Dividend  float64 `json:"dividend"`
	Split     float64 `json:"split"`
}

func (f *RESTFetcher) FetchDailyRange(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", fmt.Sprint(start.Unix()))
	q.Set("to", fmt.Sprint(end.Unix()))
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var raw []restBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, 0, len(raw))
	for _, rb := range raw {
		t := time.Unix(rb.Timestamp, 0)
		if t.Before(start) || !t.Before(end) {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:        t,
			Open:        rb.Open,
			High:        rb.High,
			Low:         rb.Low,
			Close:       rb.Close,
			AdjClose:    rb.AdjClose,
			Volume:      rb.Volume,
			Dividends:   rb.Dividend,
			StockSplits: rb.Split,
		})
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
