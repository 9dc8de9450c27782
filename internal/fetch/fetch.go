// Package fetch contains one adapter per external distress-signal source.
// Each adapter owns its transport, normalizes the source's response into
// models.Record, and scores records at normalization time. Failure policy
// (empty vs demo fallback) is applied by the refresh job, not here.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

// Fetcher is a single request/response cycle against one external source
type Fetcher interface {
	Source() models.Source
	Fetch(ctx context.Context) ([]models.Record, error)
}

const userAgent = "Mozilla/5.0 (compatible; HayseedDashboard/1.0)"

// newHTTPClient builds a client with the per-source fixed timeout
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:    10,
			IdleConnTimeout: 30 * time.Second,
		},
	}
}

// getBody performs a GET and returns the raw response body
func getBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
