package fetch

import (
	"bytes"
	"strings"

	"newsagg-api/core/domain"
	"newsagg-api/pkg/utils/html"

	"github.com/mmcdole/gofeed"
)

// parseFeed decodes an RSS or Atom document into records
func parseFeed(content []byte, target domain.FetchTarget) ([]domain.Record, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, malformed(err)
	}

	sourceName := strings.TrimSpace(parsed.Title)
	if sourceName == "" {
		sourceName = target.Label()
	}

	records := make([]domain.Record, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}

		record := domain.Record{
			Title:       strings.TrimSpace(item.Title),
			Description: html.StripHTML(item.Description),
			URL:         strings.TrimSpace(item.Link),
			SourceName:  sourceName,
		}

		switch {
		case item.PublishedParsed != nil:
			published := *item.PublishedParsed
			record.PublishedAt = &published
		case item.UpdatedParsed != nil:
			updated := *item.UpdatedParsed
			record.PublishedAt = &updated
		}

		if record.IsZero() {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
