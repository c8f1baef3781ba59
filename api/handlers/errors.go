// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	apperrors "feedreader/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}

	if apperrors.IsInvalidFeedIndex(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apperrors.IsFetchFailure(err) {
		return huma.Error502BadGateway("Feed could not be fetched", err)
	}

	if apperrors.IsConfiguration(err) {
		return huma.Error500InternalServerError("Server misconfigured", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
