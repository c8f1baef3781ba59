// ABOUTME: Request DTOs for feed-related API endpoints
// ABOUTME: Query parameters with validation tags and default values

package requests

// PageQuery selects a window of the rendered entries
type PageQuery struct {
	// Page is the page number for pagination (1-based)
	Page int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`

	// ItemsPerPage is the number of entries per page; zero returns every entry
	ItemsPerPage int `query:"items_per_page" minimum:"0" maximum:"100" default:"0" doc:"Entries per page, 0 for all"`
}

// ApplyDefaults sets default values for optional fields
func (q *PageQuery) ApplyDefaults() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.ItemsPerPage < 0 {
		q.ItemsPerPage = 0
	}
}

// Paginated reports whether a page window was requested
func (q *PageQuery) Paginated() bool {
	return q.ItemsPerPage > 0
}

// LoadQuery controls how a load request waits for its result
type LoadQuery struct {
	// Wait blocks the request until the load has finished
	Wait bool `query:"wait" default:"false" doc:"Block until the load completes"`
}
