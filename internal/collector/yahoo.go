package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"FolioLens/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	// AutoAdjust rescales OHLC by adjclose/close so the series reflects
	// splits and dividends.
	AutoAdjust bool
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, autoAdjust bool) *YahooFetcher {
	return &YahooFetcher{
		BaseURL:    yahooBaseURL,
		Client:     newHTTPClient(proxyURL),
		AutoAdjust: autoAdjust,
	}
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp []int64 `json:"timestamp"`
			Events    struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
				Splits map[string]struct {
					Date        int64   `json:"date"`
					Numerator   float64 `json:"numerator"`
					Denominator float64 `json:"denominator"`
				} `json:"splits"`
			} `json:"events"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func at(vals []interface{}, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	return toFloat(vals[i])
}

// FetchDailyRange requests daily bars for [start, end). An unknown or delisted
// symbol yields an empty slice, not an error.
func (f *YahooFetcher) FetchDailyRange(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d&events=div%%2Csplits",
		f.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]
	var adj []interface{}
	if len(result.Indicators.AdjClose) > 0 {
		adj = result.Indicators.AdjClose[0].AdjClose
	}

	loc := time.UTC
	if tz := result.Meta.ExchangeTimezoneName; tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	dayKey := func(ts int64) string { return time.Unix(ts, 0).In(loc).Format("2006-01-02") }

	dividends := make(map[string]float64, len(result.Events.Dividends))
	for _, d := range result.Events.Dividends {
		dividends[dayKey(d.Date)] += d.Amount
	}
	splits := make(map[string]float64, len(result.Events.Splits))
	for _, s := range result.Events.Splits {
		if s.Denominator != 0 {
			splits[dayKey(s.Date)] = s.Numerator / s.Denominator
		}
	}

	bars := make([]model.OHLCV, 0, len(result.Timestamp))
	unadjusted := 0
	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bar := model.OHLCV{
			Time:     time.Unix(ts, 0).In(loc),
			Open:     o,
			High:     h,
			Low:      l,
			Close:    c,
			AdjClose: at(adj, i),
			Volume:   at(quote.Volume, i),
		}
		key := dayKey(ts)
		bar.Dividends = dividends[key]
		bar.StockSplits = splits[key]
		if f.AutoAdjust && !adjustBar(&bar) {
			unadjusted++
		}
		bars = append(bars, bar)
	}
	if unadjusted > 0 {
		log.Printf("[WARN] yahoo %s: %d of %d bars have no adjusted close and keep raw prices", symbol, unadjusted, len(bars))
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// adjustBar rescales OHLC by the adjusted-close ratio. Bars without an
// adjusted close are left as is and reported false.
func adjustBar(b *model.OHLCV) bool {
	if b.AdjClose == 0 || b.Close == 0 {
		return false
	}
	ratio := b.AdjClose / b.Close
	b.Open *= ratio
	b.High *= ratio
	b.Low *= ratio
	b.Close = b.AdjClose
	return true
}
