// Package interfaces defines the contracts the core packages depend on.
// Infrastructure packages implement them; tests replace them with mocks.
package interfaces

import (
	"context"
	"time"
)

// Cache stores fetched feed documents for a short time so that repeated
// loads of the same source within the TTL do not hit the network.
//
//	err := cache.Set(ctx, "feed:https://example.com/rss", payload, 5*time.Minute)
//	payload, err := cache.Get(ctx, "feed:https://example.com/rss")
type Cache interface {
	// Get retrieves a value by key. A miss is reported as an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
