package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockStress/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted quote REST API
// exposing daily closes.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a fetcher for a custom data source with
// optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON row shape from the history endpoint.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

// FetchHistory requests daily closes for the given range string.
func (f *RESTFetcher) FetchHistory(symbol, period string) (*model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(period))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch history: status %d, body: %s", resp.StatusCode, string(body))
	}

	var bars []restBar
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s %s/%s: %w", f.Name(), symbol, period, ErrNoData)
	}

	points := make([]model.PricePoint, len(bars))
	for i, b := range bars {
		points[i] = model.PricePoint{Time: time.Unix(b.Timestamp, 0).UTC(), Close: b.Close}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })

	return &model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}
