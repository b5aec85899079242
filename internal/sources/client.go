// Package sources contains the clients for the upstream macroeconomic data
// providers and the simulated provider used in demo mode.
package sources

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"macropilot.econdata.org/internal/logging"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3
	defaultBackoff = 500 * time.Millisecond
)

// Client is a retrying HTTP client shared by the source clients. Requests
// are retried on 429 and 5xx responses with doubling backoff.
type Client struct {
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

// NewClient creates a Client with the default timeout and retry policy.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxRetries: defaultRetries,
		backoff:    defaultBackoff,
		logger:     logger,
	}
}

// GetJSON performs a GET request and returns the response body. Retryable
// statuses are retried up to the configured limit; other non-2xx statuses
// fail immediately.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	var lastErr error
	backoff := c.backoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		body, retryable, err := c.doRequest(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors are worth retrying.
		return nil, true, err
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "source_response_body")

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, true, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, false, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}
	return body, false, nil
}
