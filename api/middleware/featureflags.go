// ABOUTME: Feature flag middleware for API requests
// ABOUTME: Puts the flag manager on every request context

package middleware

import (
	"net/http"

	"feedreader/pkg/featureflags"
)

// FeatureFlagsMiddleware makes manager available through featureflags.IsEnabled(r.Context(), ...)
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}

// RequireFlag answers 404 while flag is disabled for the request
func RequireFlag(flag featureflags.FeatureFlag, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !featureflags.IsEnabled(r.Context(), flag) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
