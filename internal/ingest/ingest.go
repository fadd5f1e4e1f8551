package ingest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/seoradar/server/internal/tabular"
	"golang.org/x/time/rate"
)

const fetchTimeout = 60 * time.Second

// one upstream fetch per 10 seconds: refreshes are user-triggered and the
// sheet export endpoint does not appreciate being hammered
var fetchLimiter = rate.NewLimiter(rate.Every(10*time.Second), 1)

// pulls the sheet-export CSV from the configured URL
type Fetcher struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// creates a fetcher for a sheet-export CSV endpoint
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		url:        url,
		httpClient: &http.Client{Timeout: fetchTimeout},
		limiter:    fetchLimiter,
	}
}

// downloads the full dataset and parses it into a normalized table.
// No retry or backoff: a failed fetch is reported once and the previous
// flat file stays in place.
func (f *Fetcher) FetchAll(ctx context.Context) (tabular.Table, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return tabular.Table{}, fmt.Errorf("fetch throttled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return tabular.Table{}, fmt.Errorf("fetch failed with status %d", resp.StatusCode)
	}

	table, err := tabular.Read(resp.Body)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("failed to parse fetched dataset: %w", err)
	}

	return table, nil
}
