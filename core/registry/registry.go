// ABOUTME: Feed registry is the immutable ordered list of feed sources
// ABOUTME: Validated once at construction; read concurrently without locks afterwards

package registry

import (
	"fmt"

	"feedreader/core/domain"
	"feedreader/core/errors"
)

// Registry is a read-only ordered sequence of feed sources
type Registry struct {
	sources []domain.FeedSource
}

// New validates sources and builds a registry from a private copy of them.
// Any violation is a *errors.ConfigurationError and should abort start-up.
func New(sources []domain.FeedSource) (*Registry, error) {
	if len(sources) == 0 {
		return nil, &errors.ConfigurationError{Field: "feeds", Message: "registry must contain at least one feed"}
	}

	for i, src := range sources {
		if !src.HasName() {
			return nil, &errors.ConfigurationError{
				Field:   fmt.Sprintf("feeds[%d].name", i),
				Message: "must not be empty",
			}
		}
		if !src.HasURL() {
			return nil, &errors.ConfigurationError{
				Field:   fmt.Sprintf("feeds[%d].url", i),
				Message: "must not be empty",
			}
		}
	}

	owned := make([]domain.FeedSource, len(sources))
	copy(owned, sources)

	return &Registry{sources: owned}, nil
}

// MustNew is New for static configuration; it panics on invalid input
func MustNew(sources []domain.FeedSource) *Registry {
	r, err := New(sources)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the source at index i
func (r *Registry) Get(i int) (domain.FeedSource, error) {
	if i < 0 || i >= len(r.sources) {
		return domain.FeedSource{}, &errors.InvalidFeedIndexError{Index: i, Length: len(r.sources)}
	}
	return r.sources[i], nil
}

// Len returns the number of sources
func (r *Registry) Len() int {
	return len(r.sources)
}

// All returns a copy of every source in registry order
func (r *Registry) All() []domain.FeedSource {
	out := make([]domain.FeedSource, len(r.sources))
	copy(out, r.sources)
	return out
}
