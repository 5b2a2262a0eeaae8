// ABOUTME: Time parsing utilities for publication timestamps
// ABOUTME: Handles the formats NewsAPI and RSS/Atom sources emit, with an explicit nil for unknown dates

package time

import (
	"strings"
	"time"
)

// Common time formats found in news payloads
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// It returns the zero time when no format matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseNullable parses a publication timestamp, returning nil when it is
// absent or unparseable. Callers sort nil timestamps as the oldest.
func ParseNullable(timeStr string) *time.Time {
	parsed := ParseFlexibleTime(timeStr)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}
