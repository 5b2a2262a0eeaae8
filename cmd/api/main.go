// ABOUTME: Main entry point for the news aggregation API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsagg-api/api"
	"newsagg-api/api/handlers"
	"newsagg-api/api/middleware"
	"newsagg-api/core/interfaces"
	"newsagg-api/core/news"
	"newsagg-api/core/workers"
	stdhttp "newsagg-api/infrastructure/http/standard"
	"newsagg-api/infrastructure/logger"
	"newsagg-api/infrastructure/metrics/prometheus"
	"newsagg-api/infrastructure/sources"
	"newsagg-api/pkg/config"
	"newsagg-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	// Build the source registry
	registry, err := sources.FromConfig(cfg.News)
	if err != nil {
		log.Fatalf("Failed to load sources: %v", err)
	}

	appLogger.Info("Starting News Aggregator API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"sources":     registry.Len(),
		"workers":     cfg.News.Workers,
		"timeout":     cfg.News.Timeout().String(),
		"log_backend": cfg.Log.Backend,
	})
	if cfg.News.APIKey == "" {
		appLogger.Warn("NEWS_API_KEY is not set; NewsAPI sources will be rejected upstream", nil)
	}

	recorder := prometheus.NewRecorder()
	flags := featureflags.NewEnvManager("")

	// Create HTTP client with outbound request logging
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.HTTP.Timeout(), &middleware.LoggingRoundTripper{
		Logger: appLogger,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     appLogger,
		Recorder:   recorder,
	}

	// Start the worker pool; it is shared by every aggregation run
	pool := workers.NewPool(workers.WorkerConfig{
		MaxWorkers: cfg.News.Workers,
		QueueSize:  cfg.News.QueueSize,
	})
	if err := pool.Start(); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}

	newsService := news.NewService(deps, news.ServiceConfig{
		Registry: registry,
		Pool:     pool,
		Timeout:  cfg.News.Timeout(),
	})

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         appLogger,
		Flags:          flags,
		MetricsHandler: recorder.Handler(),
	})

	// Create and register handlers
	newsHandler := handlers.NewNewsHandler(newsService, flags)
	newsHandler.RegisterRoutes(humaAPI)

	// Create HTTP server; the write deadline must outlast a run where
	// every source uses its full timeout
	srv := api.NewHTTPServer(":"+cfg.Server.Port, router, newsService.MaxRunDuration())

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address":       srv.Addr,
			"write_timeout": srv.WriteTimeout.String(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a fatal server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// In-flight requests have drained; stop the workers last
	if err := pool.Stop(); err != nil {
		appLogger.Error("Failed to stop worker pool", map[string]interface{}{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    _   __                   ___
   / | / /__ _      _______ /   | ____ _____ _
  /  |/ / _ \ | /| / / ___// /| |/ __ '/ __ '/
 / /|  /  __/ |/ |/ (__  )/ ___ / /_/ / /_/ /
/_/ |_/\___/|__/|__/____//_/  |_\__, /\__, /
                               /____//____/
	`)
}
