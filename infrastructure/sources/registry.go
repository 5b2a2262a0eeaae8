// ABOUTME: Static source registry implementations backed by configuration
// ABOUTME: Builds the ordered fetch target list from built-in defaults, URL lists or a YAML file

package sources

import (
	"fmt"
	"slices"

	"newsagg-api/core/domain"
	coreerrors "newsagg-api/core/errors"
	"newsagg-api/pkg/config"
)

// NewsAPIBaseURL is the root of the NewsAPI v2 endpoints
const NewsAPIBaseURL = "https://newsapi.org/v2"

// StaticRegistry serves a fixed, validated list of targets.
// List returns a copy, so callers may not alter the registry.
type StaticRegistry struct {
	targets []domain.FetchTarget
}

// NewStaticRegistry validates targets and wraps them in a registry
func NewStaticRegistry(targets []domain.FetchTarget) (*StaticRegistry, error) {
	for i, target := range targets {
		if err := target.Validate(); err != nil {
			return nil, &coreerrors.ValidationError{
				Field:   fmt.Sprintf("sources[%d]", i),
				Message: err.Error(),
			}
		}
	}

	return &StaticRegistry{targets: slices.Clone(targets)}, nil
}

// List returns the targets in registry order
func (r *StaticRegistry) List() []domain.FetchTarget {
	return slices.Clone(r.targets)
}

// Len returns the number of targets
func (r *StaticRegistry) Len() int {
	return len(r.targets)
}

// DefaultNewsAPITargets returns the built-in NewsAPI sources with apiKey as their credential
func DefaultNewsAPITargets(apiKey string) []domain.FetchTarget {
	return []domain.FetchTarget{
		{
			Name:       "top-headlines-ru",
			URL:        NewsAPIBaseURL + "/top-headlines?country=ru",
			Format:     domain.FormatNewsAPI,
			Credential: apiKey,
		},
		{
			Name:       "bbc",
			URL:        NewsAPIBaseURL + "/everything?domains=bbc.co.uk",
			Format:     domain.FormatNewsAPI,
			Credential: apiKey,
		},
		{
			Name:       "techcrunch",
			URL:        NewsAPIBaseURL + "/top-headlines?sources=techcrunch",
			Format:     domain.FormatNewsAPI,
			Credential: apiKey,
		},
	}
}

// FromURLs builds NewsAPI targets from bare URLs, all sharing apiKey
func FromURLs(urls []string, apiKey string) ([]domain.FetchTarget, error) {
	targets := make([]domain.FetchTarget, 0, len(urls))
	for i, rawURL := range urls {
		target, err := domain.NewFetchTarget("", rawURL, domain.FormatNewsAPI)
		if err != nil {
			return nil, &coreerrors.ValidationError{
				Field:   fmt.Sprintf("sources[%d]", i),
				Message: err.Error(),
			}
		}
		target.Credential = apiKey
		targets = append(targets, target)
	}
	return targets, nil
}

// FromConfig picks the registry source: a YAML file, then an explicit URL
// list, then the built-in NewsAPI defaults.
func FromConfig(cfg config.NewsConfig) (*StaticRegistry, error) {
	switch {
	case cfg.SourcesFile != "":
		return LoadYAML(cfg.SourcesFile, cfg.APIKey)

	case len(cfg.Sources) > 0:
		targets, err := FromURLs(cfg.Sources, cfg.APIKey)
		if err != nil {
			return nil, err
		}
		return NewStaticRegistry(targets)

	default:
		return NewStaticRegistry(DefaultNewsAPITargets(cfg.APIKey))
	}
}
