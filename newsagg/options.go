// ABOUTME: Configuration options for the newsagg library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package newsagg

import (
	"time"

	"newsagg-api/core/interfaces"
	"newsagg-api/core/news"
	"newsagg-api/core/workers"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRecorder sets a metrics recorder
func WithRecorder(recorder interfaces.Recorder) Option {
	return func(c *Config) error {
		c.Recorder = recorder
		return nil
	}
}

// WithAPIKey sets the NewsAPI credential used by the default sources
func WithAPIKey(apiKey string) Option {
	return func(c *Config) error {
		c.APIKey = apiKey
		return nil
	}
}

// WithTimeout sets how long each source may take before it is abandoned
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithWorkerConfig sets the worker pool configuration
func WithWorkerConfig(config workers.WorkerConfig) Option {
	return func(c *Config) error {
		c.WorkerConfig = config
		return nil
	}
}

// WithWorkers sets the number of concurrent fetches
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewError(ErrorTypeConfiguration, "workers must be positive").
				WithContext("workers", n)
		}
		c.WorkerConfig.MaxWorkers = n
		return nil
	}
}

// WithTargets replaces the default sources with an explicit list
func WithTargets(targets ...Target) Option {
	return func(c *Config) error {
		c.Targets = append([]Target(nil), targets...)
		return nil
	}
}

// WithSourcesFile loads the sources from a YAML file
func WithSourcesFile(path string) Option {
	return func(c *Config) error {
		c.SourcesFile = path
		return nil
	}
}

// WithRegistry sets a custom source registry, overriding targets and files
func WithRegistry(registry interfaces.SourceRegistry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:   DefaultHTTPClient(),
		Logger:       DefaultLogger(),
		Timeout:      news.DefaultTimeout,
		WorkerConfig: workers.DefaultWorkerConfig(),
	}
}
