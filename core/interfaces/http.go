package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the fetch transport used by the feed service
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the minimal view of an HTTP response the core needs
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or "" when absent.
	Header(key string) string
}
