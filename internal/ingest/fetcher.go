package ingest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"flightprep/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Fetcher retrieves raw table text over HTTP with config-driven retry logic.
type Fetcher struct {
	client       *http.Client
	retryPolicy  *config.RetryPolicy
	bufferSizeKb int
}

// NewFetcher creates a new fetcher instance with default retry policy.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryPolicy: &config.RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		bufferSizeKb: 1024,
	}
}

// NewFetcherWithConfig creates a new fetcher with a custom retry policy.
func NewFetcherWithConfig(retryPolicy *config.RetryPolicy, bufferSizeKb int) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy:  retryPolicy,
		bufferSizeKb: bufferSizeKb,
	}
}

// FetchWithMetrics returns (content, statusCode, duration, error).
func (f *Fetcher) FetchWithMetrics(url string) (string, int, time.Duration, error) {
	var lastErr error

	var lastStatusCode int

	totalDuration := time.Duration(0)

	for attempt := 1; attempt <= f.retryPolicy.MaxAttempts; attempt++ {
		startTime := time.Now()

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)

			continue
		}

		req.Header.Set("Accept", "text/plain,text/csv;q=0.9,*/*;q=0.8")

		resp, err := f.client.Do(req)
		duration := time.Since(startTime)
		totalDuration += duration

		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, f.retryPolicy.MaxAttempts, err)

			if attempt < f.retryPolicy.MaxAttempts {
				delay := f.retryPolicy.GetRetryDelay(attempt)
				if delay > 0 {
					time.Sleep(delay)
				}
			}

			continue
		}

		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				lastErr = fmt.Errorf("failed to close response body: %w", closeErr)
			}
		}()
		lastStatusCode = resp.StatusCode

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			// Only retry on specific status codes
			if attempt < f.retryPolicy.MaxAttempts && isRetryableStatus(resp.StatusCode) {
				delay := f.retryPolicy.GetRetryDelay(attempt)
				if delay > 0 {
					time.Sleep(delay)
				}
			}

			continue
		}

		// bufferSizeKb is in KB, convert to bytes
		limit := int64(f.bufferSizeKb) * 1024
		reader := io.LimitReader(resp.Body, limit)

		body, err := io.ReadAll(reader)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)

			continue
		}

		return string(body), resp.StatusCode, totalDuration, nil
	}

	return "", lastStatusCode, totalDuration, lastErr
}

// Fetch fetches and returns content from the given URL.
func (f *Fetcher) Fetch(url string) (string, error) {
	content, _, _, err := f.FetchWithMetrics(url)

	return content, err
}

// ReadLocalFile reads raw table text from a local file path.
func ReadLocalFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read local file %s: %w", filePath, err)
	}

	return string(content), nil
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
