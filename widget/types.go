// ABOUTME: Public types for the widget API
// ABOUTME: Aliases of the core types so callers need not import core packages

package widget

import (
	"feedreader/core/domain"
	apperrors "feedreader/core/errors"
	"feedreader/core/menu"
	"feedreader/core/pipeline"
)

// FeedSource is one registry entry
type FeedSource = domain.FeedSource

// Entry is one rendered entry of the feed container
type Entry = domain.Entry

// Result describes how one load ended
type Result = pipeline.Result

// MenuState is the visibility of the menu
type MenuState = menu.State

// Menu states
const (
	MenuHidden = menu.Hidden
	MenuShown  = menu.Shown
)

// Error predicates
var (
	IsInvalidFeedIndex = apperrors.IsInvalidFeedIndex
	IsFetchFailure     = apperrors.IsFetchFailure
	IsConfiguration    = apperrors.IsConfiguration
)

func configError(field, msg string) error {
	return &apperrors.ConfigurationError{Field: field, Message: msg}
}
