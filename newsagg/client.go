// ABOUTME: Main client for the newsagg library providing concurrent news aggregation
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package newsagg

import (
	"context"
	"sync"
	"time"

	"newsagg-api/core/interfaces"
	"newsagg-api/core/news"
	"newsagg-api/core/workers"
	"newsagg-api/infrastructure/sources"
)

// Client is the main entry point for the newsagg library.
// It owns a worker pool; call Close when done.
type Client struct {
	service *news.Service
	pool    *workers.Pool

	// Dependencies
	deps interfaces.Dependencies

	// Configuration
	config Config

	mu     sync.RWMutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// HTTP client configuration
	HTTPClient interfaces.HTTPClient

	// Logger configuration
	Logger interfaces.Logger

	// Recorder is optional
	Recorder interfaces.Recorder

	// Source selection, first match wins: Registry, SourcesFile, Targets,
	// then the default NewsAPI sources using APIKey
	Registry    interfaces.SourceRegistry
	SourcesFile string
	Targets     []Target
	APIKey      string

	// Timeout bounds the wait for each source
	Timeout time.Duration

	// Worker configuration
	WorkerConfig workers.WorkerConfig
}

// NewClient creates a new client with the given options and starts its workers
func NewClient(options ...Option) (*Client, error) {
	// Start with default config
	config := defaultConfig()

	// Apply options
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	// Validate dependencies
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	registry, err := buildRegistry(config)
	if err != nil {
		return nil, err
	}

	// Create dependencies
	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Recorder:   config.Recorder,
	}

	pool := workers.NewPool(config.WorkerConfig)
	if err := pool.Start(); err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to start worker pool").WithCause(err)
	}

	service := news.NewService(deps, news.ServiceConfig{
		Registry: registry,
		Pool:     pool,
		Timeout:  config.Timeout,
	})

	return &Client{
		service: service,
		pool:    pool,
		deps:    deps,
		config:  config,
	}, nil
}

// Close stops the worker pool. Further calls return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	return c.pool.Stop()
}

// Aggregate fetches every configured source concurrently and returns the
// merged articles, newest first. Failing sources contribute nothing.
func (c *Client) Aggregate(ctx context.Context) ([]Article, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrClientClosed
	}

	records, err := c.service.Aggregate(ctx)
	if err != nil {
		return nil, fromCoreError(err)
	}

	articles := make([]Article, len(records))
	for i, r := range records {
		articles[i] = articleFromRecord(r)
	}
	return articles, nil
}

// Sources returns the configured sources with credentials redacted
func (c *Client) Sources() []Source {
	targets := c.service.Targets()
	result := make([]Source, len(targets))
	for i, t := range targets {
		result[i] = sourceFromTarget(t)
	}
	return result
}

// Timeout returns the per-source timeout in effect
func (c *Client) Timeout() time.Duration {
	return c.service.Timeout()
}

func buildRegistry(config Config) (interfaces.SourceRegistry, error) {
	switch {
	case config.Registry != nil:
		return config.Registry, nil
	case config.SourcesFile != "":
		registry, err := sources.LoadYAML(config.SourcesFile, config.APIKey)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to load sources file").
				WithCause(err).
				WithContext("path", config.SourcesFile)
		}
		return registry, nil
	case len(config.Targets) > 0:
		registry, err := sources.NewStaticRegistry(config.Targets)
		if err != nil {
			return nil, NewError(ErrorTypeValidation, "invalid target").WithCause(err)
		}
		return registry, nil
	default:
		registry, err := sources.NewStaticRegistry(sources.DefaultNewsAPITargets(config.APIKey))
		if err != nil {
			return nil, NewError(ErrorTypeInternal, "invalid default sources").WithCause(err)
		}
		return registry, nil
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.Timeout <= 0 {
		return NewError(ErrorTypeConfiguration, "timeout must be positive")
	}

	return nil
}
