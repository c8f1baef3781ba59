// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds the external collaborators of the core services.
// Every field is optional; services degrade to no-ops when one is nil.
type Dependencies struct {
	// Cache short-circuits repeated fetches of the same source
	Cache Cache

	// HTTPClient fetches feed documents
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records pipeline outcomes
	Metrics Metrics
}
