// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package newsagg

import (
	"os"
	"time"

	"newsagg-api/core/interfaces"
	httpInfra "newsagg-api/infrastructure/http/standard"
	logruslogger "newsagg-api/infrastructure/logger/logrus"
	"newsagg-api/pkg/config"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a text logger writing warnings and errors to stderr
func DefaultLogger() interfaces.Logger {
	logger, err := logruslogger.NewLoggerWithWriter(os.Stderr, config.LogConfig{
		Level:  "warn",
		Format: "text",
	})
	if err != nil {
		return QuietLogger()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}
