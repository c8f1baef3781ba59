// ABOUTME: Pagination utilities for rendered entries
// ABOUTME: Slices the container snapshot for the HTTP surface

package feed

import "feedreader/core/domain"

// PaginateEntries returns a page of entries; out-of-range pages are empty
func PaginateEntries(entries []domain.Entry, page, perPage int) []domain.Entry {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= len(entries) {
		return []domain.Entry{}
	}

	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end]
}
