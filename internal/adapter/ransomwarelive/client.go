package ransomwarelive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/ransomwatch-pull/internal/domain"
	"github.com/couchcryptid/ransomwatch-pull/internal/observability"
)

// Client fetches victim reports from the ransomware.live v2 API.
// It implements pipeline.Fetcher.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a ransomware.live API client.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// RecentVictims performs one GET against the recent-victims endpoint and
// decodes the response. No retries, no pagination. A non-2xx status or a
// top-level JSON value that is not an array is fatal to the run.
func (c *Client) RecentVictims(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/recentvictims", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recent victims request: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ransomware.live API error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(body, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, fmt.Errorf("unexpected response shape: got JSON %s, want array", typeErr.Value)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.RecordsFetched.Add(float64(len(records)))
	c.logger.Debug("fetched recent victims", "count", len(records))
	return records, nil
}
