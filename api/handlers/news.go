// ABOUTME: News handlers for the Huma API
// ABOUTME: Exposes the aggregated news feed and the configured source registry

package handlers

import (
	"context"
	"net/http"

	"newsagg-api/api/dto/mappers"
	"newsagg-api/api/dto/responses"
	"newsagg-api/core/domain"
	"newsagg-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// NewsService interface defines the methods needed from the news service
type NewsService interface {
	Aggregate(ctx context.Context) ([]domain.Record, error)
	Targets() []domain.FetchTarget
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	newsService NewsService
	flags       featureflags.Manager
}

// NewNewsHandler creates a new news handler. A nil flag manager disables
// every optional endpoint.
func NewNewsHandler(newsService NewsService, flags featureflags.Manager) *NewsHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &NewsHandler{
		newsService: newsService,
		flags:       flags,
	}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "Get aggregated news",
		Description: "Fetches every configured source concurrently and returns the merged articles, newest first. Sources that fail or time out are skipped.",
		Tags:        []string{"News"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.GetNews)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/api/sources",
		Summary:     "List configured sources",
		Description: "Returns the configured sources in aggregation order with credentials redacted. Requires the source_listing feature flag.",
		Tags:        []string{"News"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListSources)
}

// GetNewsOutput defines the output for the GetNews operation
type GetNewsOutput struct {
	Body responses.NewsResponse
}

// GetNews handles the GET /api/news endpoint
func (h *NewsHandler) GetNews(ctx context.Context, input *struct{}) (*GetNewsOutput, error) {
	records, err := h.newsService.Aggregate(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetNewsOutput{
		Body: mappers.ToNewsResponse(records),
	}, nil
}

// ListSourcesOutput defines the output for the ListSources operation
type ListSourcesOutput struct {
	Body responses.SourcesResponse
}

// ListSources handles the GET /api/sources endpoint
func (h *NewsHandler) ListSources(ctx context.Context, input *struct{}) (*ListSourcesOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.SourceListing) {
		return nil, huma.Error404NotFound("source listing is disabled")
	}

	return &ListSourcesOutput{
		Body: mappers.ToSourcesResponse(h.newsService.Targets()),
	}, nil
}
