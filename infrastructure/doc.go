// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging, metrics and source configuration.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client, single attempt per request
// - logger: Backend selection; logger/logrus and logger/zap implement it
// - metrics/prometheus: Recorder exposing aggregation outcomes to Prometheus
// - sources: Static source registries from defaults, URL lists or YAML
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://newsapi.org/v2/top-headlines?country=ru", map[string]string{
//	    "X-Api-Key": apiKey,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	appLogger, err := logger.New(config.LogConfig{Backend: "zap", Level: "info", Format: "json"})
//	appLogger.Info("Aggregation completed", map[string]interface{}{
//	    "records": 42,
//	})
//
// # Sources
//
//	registry, err := sources.LoadYAML("sources.yaml", apiKey)
//	targets := registry.List()
package infrastructure
