// ABOUTME: Public types for the newsagg library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package newsagg

import (
	"time"

	"newsagg-api/core/domain"
)

// Article is one aggregated news item
type Article struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt"`
	SourceName  string     `json:"sourceName"`
}

// Source describes one configured fetch target with its credential removed
type Source struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

// Target is a fetch target accepted by WithTargets
type Target = domain.FetchTarget

// NewTarget builds a validated target; an empty format means NewsAPI
func NewTarget(name, url, format string) (Target, error) {
	return domain.NewFetchTarget(name, url, domain.TargetFormat(format))
}

func articleFromRecord(r domain.Record) Article {
	article := Article{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		SourceName:  r.SourceName,
	}
	if r.PublishedAt != nil {
		t := r.PublishedAt.UTC()
		article.PublishedAt = &t
	}
	return article
}

func sourceFromTarget(t domain.FetchTarget) Source {
	return Source{
		Name:   t.Label(),
		URL:    t.RedactedURL(),
		Format: string(t.Format),
	}
}
