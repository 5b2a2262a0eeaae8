// ABOUTME: Logger factory selecting the configured logging backend
// ABOUTME: Returns a core Logger that also releases its output on Close

package logger

import (
	"fmt"

	"newsagg-api/core/interfaces"
	logruslogger "newsagg-api/infrastructure/logger/logrus"
	zaplogger "newsagg-api/infrastructure/logger/zap"
	"newsagg-api/pkg/config"
)

// Logger is a core Logger owning an output that must be closed on shutdown
type Logger interface {
	interfaces.Logger
	Close() error
}

// New builds the logger named by cfg.Backend
func New(cfg config.LogConfig) (Logger, error) {
	switch cfg.Backend {
	case "", "logrus":
		return logruslogger.NewLogger(cfg)
	case "zap":
		return zaplogger.NewLogger(cfg)
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}
