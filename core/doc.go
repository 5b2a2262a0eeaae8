// Package core contains the business logic for the news aggregator.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FetchTarget, Record) and the record ordering
// - fetch: Retrieves and decodes one source, absorbing every failure
// - news: The aggregator; fans work out to the pool and merges the results
// - workers: Bounded worker pool with explicit Start/Stop and task handles
// - errors: Custom error types for run-level failures
// - interfaces: Contracts for external dependencies (HTTP, logger, metrics, sources)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "newsagg-api/core/interfaces"
//	    "newsagg-api/core/news"
//	    "newsagg-api/core/workers"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	pool := workers.NewPool(workers.DefaultWorkerConfig())
//	pool.Start()
//	defer pool.Stop()
//
//	service := news.NewService(deps, news.ServiceConfig{
//	    Registry: myRegistry, // implements interfaces.SourceRegistry
//	    Pool:     pool,
//	})
//
//	records, err := service.Aggregate(ctx)
package core
