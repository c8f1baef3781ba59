// ABOUTME: Fallback parsing for feed date strings gofeed could not interpret
// ABOUTME: Tries the layouts seen in real-world RSS/Atom feeds, in order

package timeparse

import (
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse returns the first successful interpretation of s, or the zero time
func Parse(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Prefer returns *parsed when set, otherwise Parse(raw)
func Prefer(parsed *time.Time, raw string) time.Time {
	if parsed != nil && !parsed.IsZero() {
		return *parsed
	}
	return Parse(raw)
}
