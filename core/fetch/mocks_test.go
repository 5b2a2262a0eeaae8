package fetch

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"newsagg-api/core/interfaces"
)

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
	headers    map[string]string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingBody{Reader: strings.NewReader(m.body), resp: m}
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// bodylessResponse is a response whose Body is nil
type bodylessResponse struct {
	statusCode int
}

func (m *bodylessResponse) StatusCode() int          { return m.statusCode }
func (m *bodylessResponse) Body() io.ReadCloser      { return nil }
func (m *bodylessResponse) Header(key string) string { return "" }

type trackingBody struct {
	io.Reader
	resp *mockResponse
}

func (b *trackingBody) Close() error {
	b.resp.closed = true
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu     sync.Mutex
	errors []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fields)
}

// mockRecorder is a mock implementation of the Recorder interface
type mockRecorder struct {
	mu           sync.Mutex
	sourceErrors []string
}

func (m *mockRecorder) ObserveOutcome(target string, outcome interfaces.Outcome, records int) {}

func (m *mockRecorder) ObserveSourceError(target string, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceErrors = append(m.sourceErrors, kind)
}

func (m *mockRecorder) ObserveRun(status string, records int, duration time.Duration) {}
