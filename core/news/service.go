// ABOUTME: News service aggregates records from every configured source concurrently
// ABOUTME: Dispatches fetches onto the worker pool, collects them under a per-call timeout and sorts newest first

package news

import (
	"context"
	"errors"
	"slices"
	"time"

	"newsagg-api/core/domain"
	coreerrors "newsagg-api/core/errors"
	"newsagg-api/core/fetch"
	"newsagg-api/core/interfaces"
	"newsagg-api/core/workers"
)

// DefaultTimeout is the per-call timeout used when none is configured
const DefaultTimeout = 5 * time.Second

// schedulePoll is how often a target waiting for a queue slot retries
const schedulePoll = 10 * time.Millisecond

// Fetcher retrieves the records of a single target. It must not fail:
// problems are reported as an empty result.
type Fetcher interface {
	Fetch(ctx context.Context, target domain.FetchTarget) []domain.Record
}

// Pool accepts units of work without blocking and hands back a waitable task.
// A full queue is reported as workers.ErrQueueFull.
type Pool interface {
	TrySubmit(ctx context.Context, job workers.Job) (*workers.Task, error)
}

// ServiceConfig wires the collaborators of an aggregation run
type ServiceConfig struct {
	Registry interfaces.SourceRegistry
	Fetcher  Fetcher
	Pool     Pool

	// Timeout bounds the wait for each individual target
	Timeout time.Duration
}

// Service runs aggregations over the configured sources
type Service struct {
	deps     interfaces.Dependencies
	registry interfaces.SourceRegistry
	fetcher  Fetcher
	pool     Pool
	timeout  time.Duration
}

// NewService creates a new news service instance.
// A nil Fetcher defaults to fetch.NewFetcher(deps).
func NewService(deps interfaces.Dependencies, config ServiceConfig) *Service {
	if config.Fetcher == nil {
		config.Fetcher = fetch.NewFetcher(deps)
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Service{
		deps:     deps,
		registry: config.Registry,
		fetcher:  config.Fetcher,
		pool:     config.Pool,
		timeout:  config.Timeout,
	}
}

// Timeout returns the per-call timeout
func (s *Service) Timeout() time.Duration {
	return s.timeout
}

// MaxRunDuration bounds one Aggregate over the current registry: each target
// gets at most one per-call timeout, and targets are waited on in turn.
func (s *Service) MaxRunDuration() time.Duration {
	return time.Duration(len(s.Targets())) * s.timeout
}

// Targets returns the registry snapshot an aggregation would use
func (s *Service) Targets() []domain.FetchTarget {
	if s.registry == nil {
		return []domain.FetchTarget{}
	}
	return s.registry.List()
}

// Aggregate fetches every registered target and returns the merged records,
// newest first. Source failures and timeouts are absorbed; the only errors
// are *errors.InterruptedError when ctx ends and *errors.RejectedError when
// the pool is not running. A full queue is back-pressure, not a rejection.
func (s *Service) Aggregate(ctx context.Context) ([]domain.Record, error) {
	return s.AggregateTargets(ctx, s.Targets())
}

// AggregateTargets runs one aggregation over an explicit target list
func (s *Service) AggregateTargets(ctx context.Context, targets []domain.FetchTarget) ([]domain.Record, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		s.observeRun(interfaces.RunInterrupted, 0, start)
		return nil, &coreerrors.InterruptedError{Cause: err}
	}

	if len(targets) > 0 && s.pool == nil {
		s.observeRun(interfaces.RunRejected, 0, start)
		return nil, &coreerrors.RejectedError{
			Target: targets[0].Label(),
			Cause:  errors.New("worker pool not configured"),
		}
	}

	collected, err := s.run(ctx, targets)
	if err != nil {
		if coreerrors.IsInterrupted(err) {
			s.observeRun(interfaces.RunInterrupted, 0, start)
			s.logWarn("Aggregation interrupted", map[string]interface{}{
				"targets": len(targets),
				"error":   err.Error(),
			})
		} else {
			s.observeRun(interfaces.RunRejected, 0, start)
			s.logWarn("Aggregation rejected", map[string]interface{}{
				"targets": len(targets),
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	records := make([]domain.Record, 0, len(collected))
	for _, record := range collected {
		if record.IsZero() {
			continue
		}
		records = append(records, record)
	}
	slices.SortStableFunc(records, domain.ComparePublishedDesc)

	s.observeRun(interfaces.RunCompleted, len(records), start)
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Aggregation completed", map[string]interface{}{
			"targets":     len(targets),
			"records":     len(records),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	return records, nil
}

// run keeps as many targets queued as the pool accepts and collects them in
// registry order. A target the queue cannot take yet is scheduled on its
// turn; scheduling and waiting share that target's per-call timeout, so a
// slow sibling costs it time but never a refusal.
func (s *Service) run(ctx context.Context, targets []domain.FetchTarget) ([]domain.Record, error) {
	tasks := make([]*workers.Task, len(targets))
	next := 0
	var collected []domain.Record

	abort := func(err error) error {
		cancelAll(tasks)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &coreerrors.InterruptedError{Cause: ctxErr}
		}
		return err
	}

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, abort(err)
		}

		// Top up the queue with whatever fits now
		for next < len(targets) {
			task, err := s.pool.TrySubmit(ctx, s.job(targets[next]))
			if errors.Is(err, workers.ErrQueueFull) {
				break
			}
			if err != nil {
				return nil, abort(&coreerrors.RejectedError{Target: targets[next].Label(), Cause: err})
			}
			tasks[next] = task
			next++
		}

		label := target.Label()
		deadline := time.Now().Add(s.timeout)

		task := tasks[i]
		if task == nil {
			scheduled, err := s.schedule(ctx, target, deadline)
			next++
			switch {
			case err == nil:
				tasks[i] = scheduled
				task = scheduled
			case errors.Is(err, workers.ErrQueueFull):
				s.logWarn("Source could not be scheduled in time", map[string]interface{}{
					"target":     label,
					"timeout_ms": s.timeout.Milliseconds(),
				})
				s.observeOutcome(label, interfaces.OutcomeTimeout, 0)
				continue
			default:
				return nil, abort(&coreerrors.RejectedError{Target: label, Cause: err})
			}
		}

		records, err := task.Wait(ctx, time.Until(deadline))

		switch {
		case err == nil:
			collected = append(collected, records...)
			s.observeOutcome(label, interfaces.OutcomeOK, len(records))

		case errors.Is(err, workers.ErrTaskTimeout):
			// Advisory: a fetch blocked past its last context check keeps
			// running and its result is dropped.
			task.Cancel()
			s.logWarn("Source timed out", map[string]interface{}{
				"target":     label,
				"timeout_ms": s.timeout.Milliseconds(),
			})
			s.observeOutcome(label, interfaces.OutcomeTimeout, 0)

		case ctx.Err() != nil:
			return nil, abort(ctx.Err())

		default:
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Source task failed", map[string]interface{}{
					"target": label,
					"error":  err.Error(),
				})
			}
			s.observeOutcome(label, interfaces.OutcomeError, 0)
		}
	}

	return collected, nil
}

// schedule retries target until the queue takes it or deadline passes,
// in which case it returns workers.ErrQueueFull
func (s *Service) schedule(ctx context.Context, target domain.FetchTarget, deadline time.Time) (*workers.Task, error) {
	expiry := time.NewTimer(time.Until(deadline))
	defer expiry.Stop()
	ticker := time.NewTicker(schedulePoll)
	defer ticker.Stop()

	for {
		task, err := s.pool.TrySubmit(ctx, s.job(target))
		if !errors.Is(err, workers.ErrQueueFull) {
			return task, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-expiry.C:
			return nil, workers.ErrQueueFull
		case <-ticker.C:
		}
	}
}

func (s *Service) job(target domain.FetchTarget) workers.Job {
	return func(ctx context.Context) ([]domain.Record, error) {
		return s.fetcher.Fetch(ctx, target), nil
	}
}

func cancelAll(tasks []*workers.Task) {
	for _, task := range tasks {
		if task != nil {
			task.Cancel()
		}
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) observeOutcome(target string, outcome interfaces.Outcome, records int) {
	if s.deps.Recorder != nil {
		s.deps.Recorder.ObserveOutcome(target, outcome, records)
	}
}

func (s *Service) observeRun(status string, records int, start time.Time) {
	if s.deps.Recorder != nil {
		s.deps.Recorder.ObserveRun(status, records, time.Since(start))
	}
}
