package newsagg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsagg-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headlinesPayload = `{
	"status": "ok",
	"totalResults": 2,
	"articles": [
		{"source": {"name": "BBC"}, "title": "Older", "url": "https://bbc.co.uk/1", "publishedAt": "2024-05-01T10:00:00Z"},
		{"source": {"name": "BBC"}, "title": "Undated", "url": "https://bbc.co.uk/2", "publishedAt": null}
	]
}`

const techPayload = `{
	"status": "ok",
	"totalResults": 1,
	"articles": [
		{"source": {"name": "TechCrunch"}, "title": "Newer", "description": "<p>Launch</p>", "url": "https://techcrunch.com/1", "publishedAt": "2024-05-02T10:00:00Z"}
	]
}`

func newUpstream(t *testing.T) (*httptest.Server, chan string) {
	t.Helper()
	keys := make(chan string, 8)
	mux := http.NewServeMux()
	mux.HandleFunc("/headlines", func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("X-Api-Key")
		_, _ = w.Write([]byte(headlinesPayload))
	})
	mux.HandleFunc("/tech", func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("X-Api-Key")
		_, _ = w.Write([]byte(techPayload))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, keys
}

func target(t *testing.T, name, url string) Target {
	t.Helper()
	tgt, err := NewTarget(name, url, "")
	require.NoError(t, err)
	tgt.Credential = "secret"
	return tgt
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(append([]Option{WithQuietMode()}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_AggregateMergesAndSorts(t *testing.T) {
	server, keys := newUpstream(t)
	client := newTestClient(t, WithTargets(
		target(t, "headlines", server.URL+"/headlines"),
		target(t, "broken", server.URL+"/broken"),
		target(t, "tech", server.URL+"/tech"),
	))

	articles, err := client.Aggregate(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 3)
	assert.Equal(t, "Newer", articles[0].Title)
	assert.Equal(t, "Launch", articles[0].Description)
	assert.Equal(t, "Older", articles[1].Title)
	assert.Equal(t, "Undated", articles[2].Title)
	assert.Nil(t, articles[2].PublishedAt)

	close(keys)
	for key := range keys {
		assert.Equal(t, "secret", key)
	}
}

func TestClient_AggregateAfterClose(t *testing.T) {
	client := newTestClient(t, WithTargets())

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Aggregate(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestClient_AggregateInterrupted(t *testing.T) {
	server, _ := newUpstream(t)
	client := newTestClient(t, WithTargets(target(t, "tech", server.URL+"/tech")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	articles, err := client.Aggregate(ctx)
	assert.Nil(t, articles)
	assert.True(t, IsInterruptedError(err))
}

func TestClient_SourcesAreRedacted(t *testing.T) {
	client := newTestClient(t, WithAPIKey("secret"))

	got := client.Sources()

	require.Len(t, got, 3)
	assert.Equal(t, "top-headlines-ru", got[0].Name)
	assert.Equal(t, "bbc", got[1].Name)
	assert.Equal(t, "techcrunch", got[2].Name)
	for _, source := range got {
		assert.NotContains(t, source.URL, "secret")
		assert.Equal(t, string(domain.FormatNewsAPI), source.Format)
	}
}

func TestClient_Options(t *testing.T) {
	client := newTestClient(t, WithTimeout(2*time.Second), WithWorkers(3))

	assert.Equal(t, 2*time.Second, client.Timeout())
	assert.Equal(t, 3, client.pool.Workers())
}

func TestNewClient_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "zero timeout", opt: WithTimeout(0)},
		{name: "zero workers", opt: WithWorkers(0)},
		{name: "nil http client", opt: WithHTTPClient(nil)},
		{name: "missing sources file", opt: WithSourcesFile("/nonexistent/sources.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(WithQuietMode(), tt.opt)
			assert.Nil(t, client)
			assert.True(t, IsConfigurationError(err), "got %v", err)
		})
	}
}

func TestNewClient_InvalidTarget(t *testing.T) {
	client, err := NewClient(WithQuietMode(), WithTargets(Target{URL: "not a url"}))

	assert.Nil(t, client)
	assert.True(t, IsValidationError(err))
}
