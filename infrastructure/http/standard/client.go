// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Retries network errors and 5xx responses with exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"feedreader/core/interfaces"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts     = 3
	defaultUserAgent       = "FeedReader/1.0"
	defaultInitialInterval = 100 * time.Millisecond
	acceptFeeds            = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.8"
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client          *http.Client
	maxAttempts     int
	userAgent       string
	initialInterval time.Duration
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithMaxAttempts sets the total number of attempts per request, including the first
func WithMaxAttempts(n int) Option {
	return func(c *StandardHTTPClient) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithInitialInterval sets the first backoff delay
func WithInitialInterval(d time.Duration) Option {
	return func(c *StandardHTTPClient) {
		if d > 0 {
			c.initialInterval = d
		}
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts:     defaultMaxAttempts,
		userAgent:       defaultUserAgent,
		initialInterval: defaultInitialInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request. Network errors and 5xx responses are
// retried; when every attempt ends in a 5xx the last response is returned.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptFeeds)

	var last *http.Response

	operation := func() error {
		if last != nil {
			last.Body.Close()
			last = nil
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		last = resp
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		if last == nil || ctx.Err() != nil {
			if last != nil {
				last.Body.Close()
			}
			return nil, err
		}
	}

	return &httpResponse{
		statusCode: last.StatusCode,
		body:       last.Body,
		headers:    last.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
