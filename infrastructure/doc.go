// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: net/http client with backoff retries
// - logger/logrus: Structured logger backed by logrus
// - metrics: Prometheus collectors for feed loads
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 5*time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	}, 5*time.Minute)
//
// # HTTP Client
//
// The HTTP client retries network errors and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(10*time.Second, standard.WithMaxAttempts(3))
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.NewLogger("info", "json")
//	logger.Info("Feed loaded", map[string]interface{}{
//	    "index":   0,
//	    "entries": 10,
//	})
//
// # Metrics
//
//	m := metrics.NewPrometheus()
//	m.ObserveLoad(interfaces.OutcomeCommitted, elapsed)
//	mux.Handle("/metrics", m.Handler())
package infrastructure
