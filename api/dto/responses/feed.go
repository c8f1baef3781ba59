// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// FeedSourceResponse is one registry entry
type FeedSourceResponse struct {
	Index int    `json:"index" doc:"Position in the registry"`
	Name  string `json:"name" doc:"Display name"`
	URL   string `json:"url" doc:"Feed URL"`
}

// FeedListResponse lists the registry in order
type FeedListResponse struct {
	Feeds []FeedSourceResponse `json:"feeds" doc:"Registry entries in display order"`
	Total int                  `json:"total" doc:"Number of registered feeds"`
}

// EntryResponse is one rendered entry of the feed container
type EntryResponse struct {
	ID        string     `json:"id" doc:"Entry identifier, unique within the container"`
	Title     string     `json:"title" doc:"Entry heading"`
	Link      string     `json:"link" doc:"Link to the full article"`
	Excerpt   string     `json:"excerpt" doc:"Plain-text excerpt"`
	Author    string     `json:"author,omitempty" doc:"Author of the article"`
	Published *time.Time `json:"published,omitempty" doc:"Publication date when known"`
}

// FeedContentResponse is the current content of the feed container
type FeedContentResponse struct {
	SourceIndex  int             `json:"source_index" doc:"Registry index of the shown feed, -1 when empty"`
	SourceName   string          `json:"source_name,omitempty" doc:"Name of the shown feed"`
	Generation   uint64          `json:"generation" doc:"Generation of the last commit or clear"`
	TotalEntries int             `json:"total_entries" doc:"Entries in the container"`
	Page         int             `json:"page" doc:"Current page number"`
	PerPage      int             `json:"per_page" doc:"Entries per page, 0 for all"`
	Entries      []EntryResponse `json:"entries" doc:"Entries on this page"`
	HTML         string          `json:"html,omitempty" doc:"Rendered markup of the whole container"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty" doc:"When the container last changed"`
}

// LoadResponse reports a load request
type LoadResponse struct {
	Index      int    `json:"index" doc:"Registry index requested"`
	Name       string `json:"name" doc:"Feed name"`
	Status     string `json:"status" enum:"loading,committed,superseded" doc:"Outcome of the load"`
	Entries    int    `json:"entries" doc:"Entries rendered by this load"`
	Generation uint64 `json:"generation,omitempty" doc:"Generation of this load"`
	DurationMS int64  `json:"duration_ms,omitempty" doc:"Load duration in milliseconds"`
}

// FeedErrorResponse represents an error response for a specific feed
type FeedErrorResponse struct {
	URL   string `json:"url" doc:"Feed URL that failed"`
	Error string `json:"error" doc:"Error message"`
}
