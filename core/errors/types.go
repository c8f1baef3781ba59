// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates start-up configuration faults, caller faults and recoverable fetch faults

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an invalid static configuration value.
// It is fatal at start-up and never produced at runtime.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on '%s': %s", e.Field, e.Message)
}

// InvalidFeedIndexError reports a registry lookup outside [0, Length)
type InvalidFeedIndexError struct {
	Index  int
	Length int
}

// Error implements the error interface
func (e *InvalidFeedIndexError) Error() string {
	return fmt.Sprintf("invalid feed index %d: registry has %d feeds", e.Index, e.Length)
}

// FetchFailureError reports a transport or parse failure while loading a feed.
// StatusCode is zero when no HTTP response was received.
type FetchFailureError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchFailureError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed with status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying cause
func (e *FetchFailureError) Unwrap() error {
	return e.Err
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsInvalidFeedIndex checks if an error is an InvalidFeedIndexError
func IsInvalidFeedIndex(err error) bool {
	var idxErr *InvalidFeedIndexError
	return errors.As(err, &idxErr)
}

// IsFetchFailure checks if an error is a FetchFailureError
func IsFetchFailure(err error) bool {
	var fetchErr *FetchFailureError
	return errors.As(err, &fetchErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
