package fetch

import (
	"encoding/json"
	"strings"

	"newsagg-api/core/domain"
	coreerrors "newsagg-api/core/errors"
	"newsagg-api/pkg/utils/html"
	timeutil "newsagg-api/pkg/utils/time"
)

// newsAPIResponse is the NewsAPI envelope
type newsAPIResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []*newsAPIArticle `json:"articles"`

	// Populated when status is "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// parseNewsAPI decodes a NewsAPI payload. A missing or null article list yields no records.
func parseNewsAPI(content []byte, target domain.FetchTarget) ([]domain.Record, error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var payload newsAPIResponse
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, malformed(err)
	}

	if payload.Status != "" && payload.Status != "ok" {
		message := payload.Message
		if payload.Code != "" {
			message = payload.Code + ": " + message
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: 200,
			Message:    message,
			API:        target.Label(),
		}
	}

	records := make([]domain.Record, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if article == nil {
			continue
		}

		record := domain.Record{
			Title:       strings.TrimSpace(article.Title),
			Description: html.StripHTML(article.Description),
			URL:         strings.TrimSpace(article.URL),
			PublishedAt: timeutil.ParseNullable(article.PublishedAt),
			SourceName:  article.Source.Name,
		}
		if record.SourceName == "" {
			record.SourceName = target.Label()
		}
		if record.IsZero() {
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
