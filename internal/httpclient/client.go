package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/cesargomez89/soundscout/internal/constants"
)

// Client wraps an http.Client to provide rate limiting and automatic retries.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	retries    int
	retryBase  time.Duration
}

// NewClient creates a new rate-limited, retrying HTTP client. A non-positive
// requestsPerSecond disables rate limiting.
func NewClient(httpClient *http.Client, requestsPerSecond float64) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		}
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		retries:    constants.DefaultRetryCount,
		retryBase:  constants.DefaultRetryBase,
	}
}

// WithRetryBase overrides the linear backoff step. Used by tests.
func (c *Client) WithRetryBase(d time.Duration) *Client {
	c.retryBase = d
	return c
}

// Do executes an HTTP GET-style request with rate-limiting and retries.
// Requests with a body are not retried safely and should not be sent here.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req.Clone(ctx))
		var retryAfter time.Duration
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests:
			retryAfter = parseRetryAfter(resp)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("rate limited (status %d)", resp.StatusCode)
		default:
			return resp, nil
		}

		// No wait after the final attempt.
		if attempt == c.retries-1 {
			break
		}
		if err := c.backoff(ctx, attempt, retryAfter); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) backoff(ctx context.Context, attempt int, retryAfter time.Duration) error {
	wait := time.Duration(attempt+1) * c.retryBase
	if retryAfter > wait {
		wait = retryAfter
	}
	timer := time.NewTimer(wait)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter reads a Retry-After header and returns the duration to wait.
func parseRetryAfter(resp *http.Response) time.Duration {
	ra := resp.Header.Get("Retry-After")
	if ra == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(ra); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(ra); err == nil {
		return time.Until(t)
	}
	return 0
}
