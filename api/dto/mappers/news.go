// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"newsagg-api/api/dto/responses"
	"newsagg-api/core/domain"
)

// ToArticleResponse converts a domain Record to an ArticleResponse DTO
func ToArticleResponse(record domain.Record) responses.ArticleResponse {
	article := responses.ArticleResponse{
		Title:       record.Title,
		Description: record.Description,
		URL:         record.URL,
		SourceName:  record.SourceName,
	}

	if record.PublishedAt != nil {
		published := record.PublishedAt.UTC()
		article.PublishedAt = &published
	}

	return article
}

// ToNewsResponse converts aggregated records, preserving their order
func ToNewsResponse(records []domain.Record) responses.NewsResponse {
	articles := make([]responses.ArticleResponse, 0, len(records))
	for _, record := range records {
		articles = append(articles, ToArticleResponse(record))
	}

	return responses.NewsResponse{
		Articles: articles,
		Count:    len(articles),
	}
}

// ToSourcesResponse converts fetch targets, never exposing their credentials
func ToSourcesResponse(targets []domain.FetchTarget) responses.SourcesResponse {
	sources := make([]responses.SourceResponse, 0, len(targets))
	for _, target := range targets {
		sources = append(sources, responses.SourceResponse{
			Name:   target.Label(),
			URL:    target.RedactedURL(),
			Format: string(target.Format),
		})
	}

	return responses.SourcesResponse{
		Sources: sources,
		Count:   len(sources),
	}
}
