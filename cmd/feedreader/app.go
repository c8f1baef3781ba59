// ABOUTME: Command line definition for the feed reader
// ABOUTME: Shared flags and the per-command runtime wiring

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"feedreader/core/interfaces"
	"feedreader/infrastructure/cache/memory"
	"feedreader/infrastructure/cache/redis"
	stdhttp "feedreader/infrastructure/http/standard"
	logruslogger "feedreader/infrastructure/logger/logrus"
	"feedreader/infrastructure/metrics"
	"feedreader/pkg/config"
	"feedreader/pkg/featureflags"
	"feedreader/widget"
)

// RootApp builds the command tree
func RootApp() *cli.App {
	return &cli.App{
		Name:  "feedreader",
		Usage: "Load RSS/Atom feeds into a single feed container",
		Description: `Feed reader with a fixed registry of feeds.

		Exactly one feed is shown at a time. Loading a feed replaces the
		container content; when loads overlap, the one requested last wins.

		Configuration is read from the environment and an optional .env file,
		e.g. PORT=8000, CACHE_TYPE=memory, FEEDS_FILE=feeds.toml.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before reading the environment",
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			feedsCmd(),
			loadCmd(),
		},
		Action: func(ctx *cli.Context) error {
			return cli.ShowAppHelp(ctx)
		},
	}
}

// runtime is everything a command needs, built from configuration
type runtime struct {
	cfg     *config.Config
	logger  *logruslogger.Logger
	flags   featureflags.Manager
	metrics *metrics.Prometheus
	widget  *widget.Widget
	closers []io.Closer
}

// loadConfig reads and validates configuration
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("env-file"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRuntime wires the pipeline. Logs go to logOut so command output stays clean.
func newRuntime(cfg *config.Config, logOut io.Writer) (*runtime, error) {
	// FEATURE_* is read once so a running server keeps a stable configuration
	rt := &runtime{
		cfg:     cfg,
		logger:  logruslogger.NewLoggerWithOutput(logOut, cfg.Log.Level, cfg.Log.Format),
		flags:   featureflags.Snapshot(featureflags.NewEnvManager("FEATURE_")),
		metrics: metrics.NewPrometheus(),
	}

	cache := rt.newCache()
	client := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout,
		stdhttp.WithMaxAttempts(cfg.Fetch.Attempts),
		stdhttp.WithUserAgent(cfg.Fetch.UserAgent),
	)

	// Every attempt may use the full per-request timeout
	loadTimeout := cfg.Fetch.Timeout*time.Duration(cfg.Fetch.Attempts) + time.Second

	w, err := widget.New(
		widget.WithFeeds(cfg.Feeds),
		widget.WithCache(cache),
		widget.WithCacheTTL(cfg.Cache.TTL),
		widget.WithHTTPClient(client),
		widget.WithLogger(rt.logger),
		widget.WithMetrics(rt.metrics),
		widget.WithLoadTimeout(loadTimeout),
	)
	if err != nil {
		return nil, err
	}
	rt.widget = w

	return rt, nil
}

// newCache picks the configured backend. Redis falls back to memory when unreachable.
func (rt *runtime) newCache() interfaces.Cache {
	enabled := rt.flags.IsEnabled(context.Background(), featureflags.CacheEnabled)
	if !enabled || rt.cfg.Cache.Type == config.CacheNone || rt.cfg.Cache.TTL <= 0 {
		rt.logger.Info("Feed cache disabled", nil)
		return nil
	}

	if rt.cfg.Cache.Type == config.CacheRedis {
		redisCache, err := redis.NewRedisCache(rt.cfg.Cache.Redis, rt.cfg.Cache.TTL)
		if err == nil {
			rt.closers = append(rt.closers, redisCache)
			rt.logger.Info("Using Redis cache", map[string]interface{}{
				"address": rt.cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		rt.logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	rt.logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithExpiration(rt.cfg.Cache.TTL, 2*rt.cfg.Cache.TTL)
}

// Close waits for background loads and releases connections
func (rt *runtime) Close() error {
	var first error
	if err := rt.widget.Close(); err != nil {
		first = err
	}
	for _, c := range rt.closers {
		if err := c.Close(); err != nil && first == nil {
			first = fmt.Errorf("close: %w", err)
		}
	}
	return first
}
