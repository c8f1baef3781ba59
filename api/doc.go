// Package api provides the HTTP API layer for the feed reader.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware and route mounting
// - handlers/: HTTP request handlers for the feed pipeline and the menu
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET    /feeds                  registry in display order
//	POST   /feeds/{index}/load     load a feed (?wait=true blocks until done)
//	GET    /feed                   container content (?page=&items_per_page=)
//	DELETE /feed                   clear the container
//	GET    /menu                   menu visibility
//	POST   /menu/toggle            flip menu visibility
//	GET    /metrics                Prometheus metrics, when enabled
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(10, 20),
//	    Metrics:     promMetrics.Handler(),
//	})
//	api.RegisterRoutes(humaAPI, feedPipeline, menu.New(), logger)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. An unknown feed index maps to
// 404, a failed upstream fetch to 502.
package api
