// ABOUTME: FetchTarget domain model describes one upstream news source
// ABOUTME: Provides validation and credential-safe rendering of target URLs

package domain

import (
	"errors"
	"net/url"
	"strings"
)

// TargetFormat identifies the payload shape an upstream returns
type TargetFormat string

const (
	// FormatNewsAPI is the NewsAPI JSON envelope (status, totalResults, articles)
	FormatNewsAPI TargetFormat = "newsapi"

	// FormatFeed is an RSS or Atom document
	FormatFeed TargetFormat = "feed"
)

// redactedQueryKeys lists query parameters that carry credentials
var redactedQueryKeys = []string{"apikey", "api_key", "key", "token"}

// FetchTarget identifies one external data source queried during an aggregation run
type FetchTarget struct {
	// Name is the human-readable label used in logs and metrics
	Name string

	// URL is the absolute HTTP(S) address of the source
	URL string

	// Format selects how the response body is decoded
	Format TargetFormat

	// Credential is sent upstream as the X-Api-Key header. It is never logged.
	Credential string
}

// NewFetchTarget creates a target with the given name and URL, defaulting to the NewsAPI format
func NewFetchTarget(name, rawURL string, format TargetFormat) (FetchTarget, error) {
	if format == "" {
		format = FormatNewsAPI
	}

	target := FetchTarget{
		Name:   name,
		URL:    rawURL,
		Format: format,
	}

	if err := target.Validate(); err != nil {
		return FetchTarget{}, err
	}

	return target, nil
}

// Validate checks that the target can be fetched
func (t FetchTarget) Validate() error {
	if t.URL == "" {
		return errors.New("target URL cannot be empty")
	}

	parsed, err := url.Parse(t.URL)
	if err != nil || parsed.Host == "" {
		return errors.New("target URL is not a valid absolute URL")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("target URL must use http or https")
	}

	switch t.Format {
	case FormatNewsAPI, FormatFeed:
	default:
		return errors.New("target format must be 'newsapi' or 'feed'")
	}

	return nil
}

// Label returns the target name, falling back to the URL host
func (t FetchTarget) Label() string {
	if t.Name != "" {
		return t.Name
	}
	if parsed, err := url.Parse(t.URL); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return t.URL
}

// RedactedURL returns the target URL with credential query parameters masked
func (t FetchTarget) RedactedURL() string {
	return RedactURL(t.URL)
}

// RedactURL masks credential-bearing query parameters in rawURL.
// Unparseable input is returned unchanged.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for key := range query {
		for _, secret := range redactedQueryKeys {
			if strings.EqualFold(key, secret) {
				query.Set(key, "REDACTED")
				changed = true
			}
		}
	}

	if !changed {
		return rawURL
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}
