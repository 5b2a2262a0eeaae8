// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, news aggregation, HTTP and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// News contains aggregation configuration
	News NewsConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// NewsConfig holds aggregation configuration
type NewsConfig struct {
	// APIKey is the upstream credential passed through to NewsAPI
	APIKey string

	// TimeoutSeconds bounds the wait for each individual source
	TimeoutSeconds int

	// Workers is the worker pool size
	Workers int

	// QueueSize is the worker pool queue capacity
	QueueSize int

	// Sources is an optional explicit list of NewsAPI URLs
	Sources []string

	// SourcesFile is an optional YAML source registry
	SourcesFile string
}

// Timeout returns the per-call timeout as a duration
func (n NewsConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// TimeoutSeconds is the overall client timeout for one request
	TimeoutSeconds int
}

// Timeout returns the client timeout as a duration
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend selects the logger implementation (logrus/zap)
	Backend string

	// Level is the minimum level (debug/info/warn/error)
	Level string

	// Format is the output encoding (json/text)
	Format string

	// File is an optional log file path; empty logs to stdout
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		News: NewsConfig{
			APIKey:         getEnvOrDefault("NEWS_API_KEY", ""),
			TimeoutSeconds: getEnvAsIntOrDefault("NEWS_API_TIMEOUT_SECONDS", 5),
			Workers:        getEnvAsIntOrDefault("NEWS_WORKERS", 5),
			QueueSize:      getEnvAsIntOrDefault("NEWS_QUEUE_SIZE", 64),
			Sources:        getEnvAsListOrDefault("NEWS_SOURCES", nil),
			SourcesFile:    getEnvOrDefault("NEWS_SOURCES_FILE", ""),
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_CLIENT_TIMEOUT_SECONDS", 30),
		},
		Log: LogConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "logrus")),
			Level:   strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format:  strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.News.TimeoutSeconds < 1 {
		return errors.New("news API timeout must be at least 1 second")
	}

	if c.News.Workers < 1 {
		return errors.New("worker count must be at least 1")
	}

	if c.News.QueueSize < 1 {
		return errors.New("queue size must be at least 1")
	}

	if c.HTTP.TimeoutSeconds < 1 {
		return errors.New("HTTP client timeout must be at least 1 second")
	}

	if c.Log.Backend != "logrus" && c.Log.Backend != "zap" {
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
