// ABOUTME: Zap logger implementation of the core Logger interface
// ABOUTME: Builds a zapcore pipeline with JSON or console encoding and optional rotated file output

package zap

import (
	"io"
	"os"
	"sort"

	"newsagg-api/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using zap
type Logger struct {
	logger *zap.Logger
	file   *lumberjack.Logger
}

// NewLogger creates a zap logger writing to stdout, or to cfg.File with rotation
func NewLogger(cfg config.LogConfig) (*Logger, error) {
	if cfg.File == "" {
		return NewLoggerWithWriter(os.Stdout, cfg)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    500, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	l, err := NewLoggerWithWriter(file, cfg)
	if err != nil {
		return nil, err
	}
	l.file = file
	return l, nil
}

// NewLoggerWithWriter creates a zap logger writing to w
func NewLoggerWithWriter(w io.Writer, cfg config.LogConfig) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "text" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return &Logger{logger: zap.New(core)}, nil
}

// toFields converts a field map into zap fields in key order
func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}
	return zapFields
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toFields(fields)...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toFields(fields)...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toFields(fields)...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toFields(fields)...)
}

// Close flushes buffered entries and releases the log file, if any
func (l *Logger) Close() error {
	_ = l.logger.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
