// ABOUTME: Record domain model represents one normalized news article
// ABOUTME: Defines the publication-date ordering used to merge results from many sources

package domain

import "time"

// Record is one normalized item of content returned by a source
type Record struct {
	// Title is the article headline
	Title string

	// Description is an optional plain-text summary
	Description string

	// URL is the canonical link to the article
	URL string

	// PublishedAt is when the article was published. Nil when the source omits it.
	PublishedAt *time.Time

	// SourceName is the publisher label reported by the source
	SourceName string
}

// IsZero reports whether the record carries neither a title nor a URL.
// Such records are treated as absent entries and dropped before merging.
func (r Record) IsZero() bool {
	return r.Title == "" && r.URL == ""
}

// ComparePublishedDesc orders records newest first.
// A nil PublishedAt is treated as infinitely old, so undated records sort last.
// It returns a negative number when a belongs before b and zero on ties,
// which keeps stable sorts in input order.
func ComparePublishedDesc(a, b Record) int {
	switch {
	case a.PublishedAt == nil && b.PublishedAt == nil:
		return 0
	case a.PublishedAt == nil:
		return 1
	case b.PublishedAt == nil:
		return -1
	}
	return b.PublishedAt.Compare(*a.PublishedAt)
}
