// ABOUTME: FeedSource describes one entry of the feed registry
// ABOUTME: A name shown in the menu plus the URL the pipeline fetches

package domain

import "strings"

// FeedSource is a named feed URL
type FeedSource struct {
	// Name is the label shown in the feed menu
	Name string `json:"name" toml:"name"`

	// URL is the RSS/Atom address fetched by the pipeline
	URL string `json:"url" toml:"url"`
}

// HasName reports whether the source carries a non-blank name
func (s FeedSource) HasName() bool {
	return strings.TrimSpace(s.Name) != ""
}

// HasURL reports whether the source carries a non-blank URL
func (s FeedSource) HasURL() bool {
	return strings.TrimSpace(s.URL) != ""
}
