// Package api provides the HTTP presentation layer for the news aggregator.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// response schemas, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects and the mappers that build them
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - GET /api/news: runs one aggregation and returns the merged, newest-first list
// - GET /api/sources: lists the configured sources (behind the source_listing flag)
// - GET /metrics: Prometheus metrics (behind the metrics_enabled flag)
// - GET /openapi.json and GET /docs
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:         logger,
//	    Flags:          flags,
//	    MetricsHandler: recorder.Handler(),
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	newsHandler := handlers.NewNewsHandler(newsService, flags)
//	newsHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "aggregation interrupted"
//	}
//
// A failing source never fails the request; it simply contributes no
// articles. Only run-level failures reach the client.
package api
