// ABOUTME: Embeddable feed reader: registry, feed container and menu behind one value
// ABOUTME: Offers the core behavior without HTTP dependencies

package widget

import (
	"context"
	"time"

	"feedreader/core/container"
	"feedreader/core/feed"
	"feedreader/core/interfaces"
	"feedreader/core/menu"
	"feedreader/core/pipeline"
	"feedreader/core/registry"
)

// Widget is the main entry point of the library
type Widget struct {
	registry *registry.Registry
	pipeline *pipeline.Pipeline
	menu     *menu.Controller
	deps     interfaces.Dependencies
	config   Config
}

// New creates a widget with the given options. Without options it reads
// the built-in feed registry through an in-memory cache.
func New(options ...Option) (*Widget, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	reg, err := registry.New(config.Feeds)
	if err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	cacheTTL := config.CacheTTL
	if config.Cache == nil {
		cacheTTL = 0
	}
	service := feed.NewFeedService(deps,
		feed.WithCacheTTL(cacheTTL),
		feed.WithFetchTimeout(config.LoadTimeout),
	)

	return &Widget{
		registry: reg,
		pipeline: pipeline.New(reg, service, deps, pipeline.WithTimeout(config.LoadTimeout)),
		menu:     menu.New(),
		deps:     deps,
		config:   config,
	}, nil
}

// Close waits for loads still running in the background
func (w *Widget) Close() error {
	w.pipeline.Wait()
	return nil
}

// Feeds returns the registry in display order
func (w *Widget) Feeds() []FeedSource {
	return w.registry.All()
}

// Registry returns the feed registry
func (w *Widget) Registry() *registry.Registry {
	return w.registry
}

// LoadFeed loads the feed at index and waits for it to finish
func (w *Widget) LoadFeed(ctx context.Context, index int) (Result, error) {
	return w.pipeline.LoadFeed(ctx, index)
}

// LoadFeedAsync starts loading the feed at index. onComplete runs exactly
// once when the load has finished. Only the most recent call may change
// the container.
func (w *Widget) LoadFeedAsync(index int, onComplete func(Result)) error {
	return w.pipeline.LoadFeedAsync(index, onComplete)
}

// Wait blocks until every asynchronous load has completed
func (w *Widget) Wait() {
	w.pipeline.Wait()
}

// Snapshot returns the current content of the feed container
func (w *Widget) Snapshot() container.Snapshot {
	return w.pipeline.Snapshot()
}

// Entries returns the entries currently in the feed container
func (w *Widget) Entries() []Entry {
	return w.pipeline.Snapshot().Entries
}

// Clear empties the feed container
func (w *Widget) Clear() {
	w.pipeline.Clear()
}

// Menu returns the menu controller
func (w *Widget) Menu() *menu.Controller {
	return w.menu
}

// ToggleMenu flips the menu visibility and returns the new state
func (w *Widget) ToggleMenu() menu.State {
	return w.menu.Toggle()
}

// MenuHidden reports whether the menu is hidden
func (w *Widget) MenuHidden() bool {
	return w.menu.Hidden()
}

// LoadTimeout is the bound every load runs under
func (w *Widget) LoadTimeout() time.Duration {
	return w.config.LoadTimeout
}

// validateConfig validates the widget configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return configError("http_client", "HTTP client is required")
	}
	if config.LoadTimeout <= 0 {
		return configError("load_timeout", "must be positive")
	}
	return nil
}
