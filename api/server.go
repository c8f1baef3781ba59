// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"feedreader/api/handlers"
	"feedreader/api/middleware"
	"feedreader/core/interfaces"
	"feedreader/pkg/featureflags"
)

const (
	apiTitle   = "Feed Reader API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	// Logger enables request logging when set
	Logger interfaces.Logger

	// RateLimiter enables per-IP rate limiting when set
	RateLimiter *middleware.RateLimiter

	// Metrics is served at /metrics when set
	Metrics http.Handler

	// Flags is put on every request context. Rate limiting and /metrics
	// consult it per request; without it both follow featureflags.Defaults.
	Flags featureflags.Manager
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Burst", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Loads registered RSS/Atom feeds into a single feed container and toggles the navigation menu"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	if cfg.Metrics != nil {
		router.Handle("/metrics", middleware.RequireFlag(featureflags.MetricsEnabled, cfg.Metrics))
	}

	return api, router
}

// RegisterRoutes mounts the feed and menu handlers on api
func RegisterRoutes(api huma.API, loader handlers.FeedLoader, menu handlers.MenuToggler, logger interfaces.Logger) {
	handlers.NewFeedHandler(loader, logger).RegisterRoutes(api)
	handlers.NewMenuHandler(menu).RegisterRoutes(api)
}
