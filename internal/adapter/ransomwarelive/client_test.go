package ransomwarelive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/ransomwatch-pull/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "ransom_live_pull/1.0"

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  testUserAgent,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:    observability.NewMetrics(),
	}
}

func TestClient_RecentVictims_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recentvictims", r.URL.Path)
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[
			{"victim":"Acme Corp","country":"US","discovered":"2025-01-12 08:30:00.000000","url":"https://x/r/id1","press":["http://a"]},
			{"victim":"Berlin Co","country":"DE","discovered":"2025-01-11","press":null}
		]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	records, err := c.RecentVictims(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Acme Corp", records[0].Victim)
	assert.Equal(t, "US", records[0].Country)
	assert.Equal(t, "https://x/r/id1", records[0].URL)
	assert.Equal(t, []any{"http://a"}, records[0].Press)
	assert.Nil(t, records[1].Press)
}

func TestClient_RecentVictims_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).RecentVictims(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_RecentVictims_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).RecentVictims(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestClient_RecentVictims_ShapeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).RecentVictims(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected response shape")
	assert.Contains(t, err.Error(), "object")
}

func TestClient_RecentVictims_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"victim":`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).RecentVictims(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_RecentVictims_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.RecentVictims(context.Background())
	require.Error(t, err)
}

func TestClient_RecentVictims_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL).RecentVictims(ctx)
	require.Error(t, err)
}
