// ABOUTME: Feed domain model represents one fetched RSS/Atom document
// ABOUTME: Holds the articles parsed out of a single fetch of a FeedSource

package domain

import "time"

// Feed is the parsed result of fetching a FeedSource
type Feed struct {
	// Title is the channel title reported by the feed itself
	Title string

	// Description is the channel description
	Description string

	// URL is the address the feed was fetched from
	URL string

	// Link is the website URL associated with the feed
	Link string

	// Language of the feed, when declared (e.g. "en-US")
	Language string

	// Articles contains the feed entries in document order
	Articles []Article

	// FetchedAt records when the document was retrieved
	FetchedAt time.Time
}

// Len returns the number of articles in the feed
func (f *Feed) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Articles)
}
