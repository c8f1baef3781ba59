// ABOUTME: Article and Entry domain models
// ABOUTME: Article is what the feed says, Entry is what the container shows

package domain

import "time"

// Article is an individual item of a fetched feed
type Article struct {
	// ID is the item GUID, or its link when the feed has no GUID
	ID string

	// Title is the item's headline
	Title string

	// Link is the URL to the full article
	Link string

	// Description is the short summary, possibly HTML
	Description string

	// Content is the full body, possibly HTML
	Content string

	// Author is the creator of the item
	Author string

	// Published is when the item was published, zero when unknown
	Published time.Time
}

// IsValid checks that the article has a title and something to show or follow
func (a *Article) IsValid() bool {
	if a.Title == "" {
		return false
	}

	return a.Link != "" || a.Content != "" || a.Description != ""
}

// Body returns the richest text the article carries
func (a *Article) Body() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

// Entry is the rendered representation of one article inside the feed container
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author,omitempty"`
	Published time.Time `json:"published,omitempty"`
}
