// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads .env files, environment variables and the TOML feed registry file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"feedreader/core/domain"
	apperrors "feedreader/core/errors"
)

// Cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch controls outbound feed requests
	Fetch FetchConfig

	// RateLimit controls per-client request limits on the API
	RateLimit RateLimitConfig

	// Log controls logger level and format
	Log LogConfig

	// FeedsFile is the optional TOML registry path the feeds were read from
	FeedsFile string

	// Feeds is the ordered feed registry
	Feeds []domain.FeedSource
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/none)
	Type string

	// TTL is how long parsed feeds stay cached
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// FetchConfig holds outbound HTTP configuration
type FetchConfig struct {
	Timeout time.Duration

	// Attempts is the total number of tries per fetch, the first included
	Attempts int

	UserAgent string
}

// RateLimitConfig holds the token bucket parameters per client IP
type RateLimitConfig struct {
	RPS   float64
	Burst int

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP; only safe behind a proxy
	TrustProxy bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// feedsFile is the on-disk registry layout
type feedsFile struct {
	Feeds []domain.FeedSource `toml:"feeds"`
}

// DefaultFeeds returns the built-in registry
func DefaultFeeds() []domain.FeedSource {
	return []domain.FeedSource{
		{Name: "Udacity Blog", URL: "http://blog.udacity.com/feed"},
		{Name: "CSS Tricks", URL: "http://feeds.feedburner.com/CssTricks"},
		{Name: "HTML5 Rocks", URL: "http://feeds.feedburner.com/html5rocks"},
		{Name: "Linear Digressions", URL: "http://feeds.feedburner.com/udacity-linear-digressions"},
	}
}

// Load reads the given .env files (default ".env") when they exist,
// then builds the configuration from the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheMemory)),
			TTL:  time.Duration(getEnvAsIntOrDefault("CACHE_TTL", 300)) * time.Second,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Fetch: FetchConfig{
			Timeout:   time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT", 10)) * time.Second,
			Attempts:  getEnvAsIntOrDefault("FETCH_ATTEMPTS", 3),
			UserAgent: getEnvOrDefault("FETCH_USER_AGENT", "FeedReader/1.0"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			Burst: getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),

			TrustProxy: getEnvAsBoolOrDefault("RATE_LIMIT_TRUST_PROXY", false),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
		FeedsFile: os.Getenv("FEEDS_FILE"),
	}

	if cfg.FeedsFile == "" {
		cfg.Feeds = DefaultFeeds()
		return cfg, nil
	}

	feeds, err := LoadFeedsFile(cfg.FeedsFile)
	if err != nil {
		return nil, err
	}
	cfg.Feeds = feeds
	return cfg, nil
}

// LoadFeedsFile reads a TOML registry of [[feeds]] tables
func LoadFeedsFile(path string) ([]domain.FeedSource, error) {
	var file feedsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, &apperrors.ConfigurationError{
			Field:   "FEEDS_FILE",
			Message: err.Error(),
		}
	}
	return file.Feeds, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &apperrors.ConfigurationError{Field: "PORT", Message: "cannot be empty"}
	}

	switch c.Cache.Type {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return &apperrors.ConfigurationError{Field: "REDIS_ADDRESS", Message: "cannot be empty when using redis cache"}
		}
	default:
		return &apperrors.ConfigurationError{Field: "CACHE_TYPE", Message: "must be 'memory', 'redis' or 'none'"}
	}

	if c.Cache.TTL < 0 {
		return &apperrors.ConfigurationError{Field: "CACHE_TTL", Message: "cannot be negative"}
	}
	if c.Fetch.Timeout <= 0 {
		return &apperrors.ConfigurationError{Field: "FETCH_TIMEOUT", Message: "must be at least 1 second"}
	}
	if c.Fetch.Attempts < 1 {
		return &apperrors.ConfigurationError{Field: "FETCH_ATTEMPTS", Message: "must be at least 1"}
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return &apperrors.ConfigurationError{Field: "RATE_LIMIT", Message: "rps and burst must be positive"}
	}
	if len(c.Feeds) == 0 {
		return &apperrors.ConfigurationError{Field: "feeds", Message: "registry is empty"}
	}

	return nil
}
