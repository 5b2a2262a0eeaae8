package news

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"newsagg-api/core/domain"
	"newsagg-api/core/interfaces"
	"newsagg-api/core/workers"
)

// mockRegistry is a mock implementation of the SourceRegistry interface
type mockRegistry struct {
	targets []domain.FetchTarget
}

func (m *mockRegistry) List() []domain.FetchTarget {
	return m.targets
}

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     map[string]int
	fetchFunc func(ctx context.Context, target domain.FetchTarget) []domain.Record
}

func (m *mockFetcher) Fetch(ctx context.Context, target domain.FetchTarget) []domain.Record {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[target.Name]++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, target)
	}
	return nil
}

func (m *mockFetcher) callCounts() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int, len(m.calls))
	for name, n := range m.calls {
		counts[name] = n
	}
	return counts
}

// mockPool is a mock implementation of the Pool interface
type mockPool struct {
	trySubmitFunc func(ctx context.Context, job workers.Job) (*workers.Task, error)
}

func (m *mockPool) TrySubmit(ctx context.Context, job workers.Job) (*workers.Task, error) {
	return m.trySubmitFunc(ctx, job)
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var msgs []string
	for _, entry := range m.entries {
		if entry.level == level {
			msgs = append(msgs, entry.msg)
		}
	}
	return msgs
}

// mockRecorder is a mock implementation of the Recorder interface
type mockRecorder struct {
	mu       sync.Mutex
	outcomes map[string]interfaces.Outcome
	runs     []string
}

func (m *mockRecorder) ObserveOutcome(target string, outcome interfaces.Outcome, records int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]interfaces.Outcome)
	}
	m.outcomes[target] = outcome
}

func (m *mockRecorder) ObserveSourceError(target string, kind string) {}

func (m *mockRecorder) ObserveRun(status string, records int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, status)
}
