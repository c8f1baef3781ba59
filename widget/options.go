// ABOUTME: Configuration options for the widget
// ABOUTME: Provides functional options pattern for flexible configuration

package widget

import (
	"time"

	"feedreader/core/interfaces"
	"feedreader/infrastructure/cache/memory"
	stdhttp "feedreader/infrastructure/http/standard"
	logruslogger "feedreader/infrastructure/logger/logrus"
	"feedreader/pkg/config"
)

const (
	defaultCacheTTL    = 5 * time.Minute
	defaultLoadTimeout = 30 * time.Second
	defaultHTTPTimeout = 10 * time.Second
)

// Config holds the configuration for the widget
type Config struct {
	// Feeds is the ordered registry
	Feeds []FeedSource

	// Cache stores parsed feeds; nil disables caching
	Cache interfaces.Cache

	// CacheTTL is how long parsed feeds stay cached
	CacheTTL time.Duration

	// HTTPClient fetches feed documents
	HTTPClient interfaces.HTTPClient

	// Logger receives structured logs; nil discards them
	Logger interfaces.Logger

	// Metrics receives load observations; nil discards them
	Metrics interfaces.Metrics

	// LoadTimeout bounds every load
	LoadTimeout time.Duration
}

// Option is a functional option for configuring the widget
type Option func(*Config) error

// WithFeeds replaces the registry
func WithFeeds(feeds []FeedSource) Option {
	return func(c *Config) error {
		c.Feeds = feeds
		return nil
	}
}

// WithCache sets a custom cache implementation. nil disables caching.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithCacheTTL sets how long parsed feeds stay cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return configError("cache_ttl", "cannot be negative")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithLoadTimeout bounds every load
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Config) error {
		c.LoadTimeout = d
		return nil
	}
}

// defaultConfig returns the default widget configuration
func defaultConfig() Config {
	return Config{
		Feeds:       config.DefaultFeeds(),
		Cache:       memory.NewMemoryCache(),
		CacheTTL:    defaultCacheTTL,
		HTTPClient:  stdhttp.NewStandardHTTPClient(defaultHTTPTimeout),
		Logger:      logruslogger.NewLogger("warn", "text"),
		LoadTimeout: defaultLoadTimeout,
	}
}
