// ABOUTME: Recorder interface for aggregation observability events
// ABOUTME: Lets the core report timeouts and failures without depending on a metrics backend

package interfaces

import "time"

// Outcome describes how one target resolved within an aggregation run
type Outcome string

const (
	// OutcomeOK means the unit completed and its records were merged
	OutcomeOK Outcome = "ok"

	// OutcomeTimeout means the unit did not complete within the per-call timeout
	OutcomeTimeout Outcome = "timeout"

	// OutcomeError means the unit itself failed (for example it panicked)
	OutcomeError Outcome = "error"
)

// Run statuses reported through ObserveRun
const (
	RunCompleted   = "completed"
	RunInterrupted = "interrupted"
	RunRejected    = "rejected"
)

// Recorder receives observability events from the aggregator and fetcher.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// ObserveOutcome records the resolution of one target.
	ObserveOutcome(target string, outcome Outcome, records int)

	// ObserveSourceError records a failure the fetcher absorbed, by kind
	// ("transport", "status", "parse").
	ObserveSourceError(target string, kind string)

	// ObserveRun records one aggregation run.
	ObserveRun(status string, records int, duration time.Duration)
}
