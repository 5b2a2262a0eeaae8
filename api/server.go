// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"newsagg-api/api/middleware"
	"newsagg-api/core/interfaces"
	"newsagg-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "News Aggregator API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Flags gates optional endpoints; nil disables them
	Flags featureflags.Manager

	// MetricsHandler is mounted at /metrics when the metrics flag is on
	MetricsHandler http.Handler
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.MetricsHandler != nil {
		flags := cfg.Flags
		if flags == nil {
			flags = featureflags.NewStaticManager(nil)
		}
		router.Handle("/metrics", middleware.FeatureGate(flags, featureflags.MetricsEnabled, cfg.MetricsHandler))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Aggregates articles from several news sources concurrently and returns them newest first"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
