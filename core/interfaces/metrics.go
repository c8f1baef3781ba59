package interfaces

import "time"

// Load outcomes reported to Metrics
const (
	OutcomeCommitted  = "committed"
	OutcomeSuperseded = "superseded"
	OutcomeFailed     = "failed"
)

// Metrics receives pipeline observations
type Metrics interface {
	// ObserveLoad records one finished load with its outcome and total duration.
	ObserveLoad(outcome string, duration time.Duration)

	// SetRenderedEntries records how many entries the container currently shows.
	SetRenderedEntries(n int)
}
