// ABOUTME: Bounded worker pool that runs fetch units for the aggregator
// ABOUTME: Provides explicit start/stop lifecycle and per-task wait and cancel handles

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newsagg-api/core/domain"
)

// Job is one unit of work. It must observe ctx to be cancellable.
type Job func(ctx context.Context) ([]domain.Record, error)

// Pool runs submitted jobs on a fixed number of workers
type Pool struct {
	queue      chan *Task
	maxWorkers int
	queueSize  int
	enqueueTTL time.Duration
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	running    bool
}

// WorkerConfig holds configuration for the pool
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// EnqueueTimeout bounds how long Submit waits for queue space
	EnqueueTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers:     5,
		QueueSize:      64,
		EnqueueTimeout: 5 * time.Second,
	}
}

// NewPool creates a stopped pool. Call Start before submitting work.
func NewPool(config WorkerConfig) *Pool {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.EnqueueTimeout <= 0 {
		config.EnqueueTimeout = defaults.EnqueueTimeout
	}

	return &Pool{
		maxWorkers: config.MaxWorkers,
		queueSize:  config.QueueSize,
		enqueueTTL: config.EnqueueTimeout,
	}
}

// Start launches the workers. Starting a running pool is a no-op.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.queue = make(chan *Task, p.queueSize)

	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.work(p.queue)
	}

	p.running = true
	return nil
}

// Stop cancels running tasks, fails queued ones with ErrPoolNotRunning and
// waits for the workers to exit. Stopping a stopped pool is a no-op.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.cancel()
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// Running reports whether the pool accepts work
func (p *Pool) Running() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Workers returns the configured worker count
func (p *Pool) Workers() int {
	return p.maxWorkers
}

// Submit enqueues job and returns its handle. Tasks start in submission order.
// It returns ErrPoolNotRunning when the pool is stopped, ErrQueueFull when no
// queue slot frees up within the enqueue timeout, and ctx.Err() when ctx ends first.
func (p *Pool) Submit(ctx context.Context, job Job) (*Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		return nil, ErrPoolNotRunning
	}

	task := newTask(ctx, job)

	timer := time.NewTimer(p.enqueueTTL)
	defer timer.Stop()

	select {
	case p.queue <- task:
		return task, nil
	case <-timer.C:
		task.cancel()
		return nil, ErrQueueFull
	case <-ctx.Done():
		task.cancel()
		return nil, ctx.Err()
	}
}

// TrySubmit enqueues job only if a queue slot is free right now.
// It returns ErrQueueFull immediately otherwise.
func (p *Pool) TrySubmit(ctx context.Context, job Job) (*Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		return nil, ErrPoolNotRunning
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	task := newTask(ctx, job)

	select {
	case p.queue <- task:
		return task, nil
	default:
		task.cancel()
		return nil, ErrQueueFull
	}
}

// work is the main loop for each worker
func (p *Pool) work(queue <-chan *Task) {
	defer p.wg.Done()

	for task := range queue {
		if p.ctx.Err() != nil {
			task.finish(nil, ErrPoolNotRunning)
			continue
		}
		task.run(p.ctx)
	}
}

// Task is the handle for one submitted job
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	job    Job
	done   chan struct{}

	records []domain.Record
	err     error
}

func newTask(ctx context.Context, job Job) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	return &Task{
		ctx:    taskCtx,
		cancel: cancel,
		job:    job,
		done:   make(chan struct{}),
	}
}

// Wait blocks until the task completes, timeout elapses or ctx ends.
// On timeout it returns ErrTaskTimeout and leaves the task running; call Cancel to abandon it.
func (t *Task) Wait(ctx context.Context, timeout time.Duration) ([]domain.Record, error) {
	select {
	case <-t.done:
		return t.records, t.err
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-t.done:
		return t.records, t.err
	case <-timer.C:
		return nil, ErrTaskTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel requests cancellation of the task.
// Cancellation is advisory: a job blocked in I/O that does not observe its
// context keeps running, and its result is simply never collected.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has finished, successfully or not
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// run executes the job, cancelling it if the pool stops meanwhile
func (t *Task) run(poolCtx context.Context) {
	if err := t.ctx.Err(); err != nil {
		t.finish(nil, err)
		return
	}

	stop := context.AfterFunc(poolCtx, t.cancel)
	defer stop()

	var (
		records []domain.Record
		err     error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		records, err = t.job(t.ctx)
	}()

	t.finish(records, err)
}

func (t *Task) finish(records []domain.Record, err error) {
	t.records = records
	t.err = err
	t.cancel()
	close(t.done)
}

// Error definitions
var (
	ErrPoolNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull      = &WorkerError{Message: "job queue is full"}
	ErrTaskTimeout    = &WorkerError{Message: "task timed out"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
