// ABOUTME: Response DTOs for the news aggregation endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ArticleResponse represents one aggregated record in API responses
type ArticleResponse struct {
	Title       string     `json:"title" doc:"Article headline"`
	Description string     `json:"description" doc:"Plain-text article summary"`
	URL         string     `json:"url" doc:"Link to the full article"`
	PublishedAt *time.Time `json:"publishedAt" nullable:"true" doc:"Publication time, null when the source gave none"`
	SourceName  string     `json:"sourceName" doc:"Name of the publishing source"`
}

// NewsResponse represents the result of one aggregation run
type NewsResponse struct {
	Articles []ArticleResponse `json:"articles" doc:"Articles ordered newest first; undated articles last"`
	Count    int               `json:"count" doc:"Number of articles"`
}

// SourceResponse describes one configured fetch target
type SourceResponse struct {
	Name   string `json:"name" doc:"Source label"`
	URL    string `json:"url" doc:"Source URL with credentials redacted"`
	Format string `json:"format" doc:"Payload format (newsapi or feed)"`
}

// SourcesResponse lists the configured fetch targets in registry order
type SourcesResponse struct {
	Sources []SourceResponse `json:"sources" doc:"Configured sources"`
	Count   int              `json:"count" doc:"Number of sources"`
}
