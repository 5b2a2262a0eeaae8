// ABOUTME: Logrus logger implementation of the core Logger interface
// ABOUTME: Supports JSON or text output, level filtering and rotated file output via lumberjack

package logrus

import (
	"io"
	"os"

	"newsagg-api/pkg/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	logger *logrus.Logger
	file   *lumberjack.Logger
}

// NewLogger creates a logrus logger writing to stdout, or to cfg.File with rotation
func NewLogger(cfg config.LogConfig) (*Logger, error) {
	if cfg.File == "" {
		return NewLoggerWithWriter(os.Stdout, cfg)
	}

	file := newRotatingFile(cfg.File)
	l, err := NewLoggerWithWriter(file, cfg)
	if err != nil {
		return nil, err
	}
	l.file = file
	return l, nil
}

// NewLoggerWithWriter creates a logrus logger writing to w
func NewLoggerWithWriter(w io.Writer, cfg config.LogConfig) (*Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{logger: logger}, nil
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    500, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
