package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const fearGreedBaseURL = "https://production.dataviz.cnn.io/index/fearandgreed/graphdata"

// CNN rejects requests that do not look like they come from a browser.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const historyDays = 365

// FearGreedProvider fetches the CNN Fear & Greed graph data: the current
// index reading, roughly a year of daily history, and the component
// indicators, all in one call.
type FearGreedProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	nowFunc func() time.Time
}

// NewFearGreedProvider creates a provider with built-in rate limiting.
// Rate limited to 10 requests per minute (one token every 6 seconds).
func NewFearGreedProvider(tracer trace.Tracer) *FearGreedProvider {
	return &FearGreedProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: fearGreedBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 6*time.Second),
		nowFunc: time.Now,
	}
}

// FetchGraphData issues a single GET for the trailing year of index data,
// with the window start date embedded in the path. Any transport, HTTP, or
// decode failure is returned as an error; there are no retries.
func (p *FearGreedProvider) FetchGraphData(ctx context.Context) (*GraphData, error) {
	_, span := p.tracer.Start(ctx, "feargreed.fetch-graphdata")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := p.nowFunc().UTC().AddDate(0, 0, -historyDays).Format("2006-01-02")
	url := strings.TrimRight(p.baseURL, "/") + "/" + start

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fear & greed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fear & greed API error %d: %s", resp.StatusCode, string(body))
	}

	var payload GraphData
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fear & greed response: %w", err)
	}

	return &payload, nil
}
