package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/platform/config"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
)

func resourceConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       1 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// fakeResource serves a scripted sequence of statuses and records what it
// received. Once the script runs out the last status repeats.
type fakeResource struct {
	srv      *httptest.Server
	hits     atomic.Int32
	statuses []int

	mu      sync.Mutex
	bodies  []string
	headers []http.Header
}

func newFakeResource(t *testing.T, statuses ...int) *fakeResource {
	t.Helper()

	f := &fakeResource{statuses: statuses}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(f.hits.Add(1))
		b, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.bodies = append(f.bodies, string(b))
		f.headers = append(f.headers, r.Header.Clone())
		f.mu.Unlock()

		status := f.statuses[min(n, len(f.statuses))-1]
		w.WriteHeader(status)
		_, _ = io.WriteString(w, statusBody(status))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// statusBody is the body fakeResource sends for status. Statuses that
// forbid a body get none.
func statusBody(status int) string {
	if status == http.StatusNoContent || status == http.StatusNotModified {
		return ""
	}
	return http.StatusText(status)
}

func (f *fakeResource) client(mutate func(*config.ClientConfig)) *httpclient.Client {
	cfg := resourceConfig(f.srv.URL)
	if mutate != nil {
		mutate(cfg)
	}
	return httpclient.New(cfg, "todo-resource", nil, slog.New(slog.DiscardHandler))
}

func send(ctx context.Context, t *testing.T, c *httpclient.Client, method, path, body string) (*http.Response, error) {
	t.Helper()

	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, rd)
	require.NoError(t, err)

	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func singleShot(cfg *config.ClientConfig) {
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
}

func TestDo_RetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		body       string
		statuses   []int
		wantStatus int
		wantHits   int32
		wantErr    bool
	}{
		{
			name:       "list succeeds first time",
			method:     http.MethodGet,
			statuses:   []int{http.StatusOK},
			wantStatus: http.StatusOK,
			wantHits:   1,
		},
		{
			name:       "list retried through 5xx",
			method:     http.MethodGet,
			statuses:   []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusOK},
			wantStatus: http.StatusOK,
			wantHits:   3,
		},
		{
			name:       "patch retried on 429",
			method:     http.MethodPatch,
			body:       `{"completed":true}`,
			statuses:   []int{http.StatusTooManyRequests, http.StatusOK},
			wantStatus: http.StatusOK,
			wantHits:   2,
		},
		{
			name:       "delete retried on 503",
			method:     http.MethodDelete,
			statuses:   []int{http.StatusServiceUnavailable, http.StatusNoContent},
			wantStatus: http.StatusNoContent,
			wantHits:   2,
		},
		{
			name:       "4xx is final",
			method:     http.MethodGet,
			statuses:   []int{http.StatusNotFound},
			wantStatus: http.StatusNotFound,
			wantHits:   1,
		},
		{
			name:       "exhausted attempts keep the last response",
			method:     http.MethodGet,
			statuses:   []int{http.StatusServiceUnavailable},
			wantStatus: http.StatusServiceUnavailable,
			wantHits:   3,
			wantErr:    true,
		},
		{
			name:       "create is never replayed",
			method:     http.MethodPost,
			body:       `{"text":"buy milk"}`,
			statuses:   []int{http.StatusServiceUnavailable, http.StatusCreated},
			wantStatus: http.StatusServiceUnavailable,
			wantHits:   1,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := newFakeResource(t, tt.statuses...)
			c := res.client(func(cfg *config.ClientConfig) { cfg.CircuitBreaker.MaxFailures = 10 })

			resp, err := send(context.Background(), t, c, tt.method, "/todos/1", tt.body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantHits, res.hits.Load())

			got, _ := io.ReadAll(resp.Body)
			assert.Equal(t, statusBody(tt.wantStatus), string(got))

			if tt.body != "" {
				for i, b := range res.bodies {
					assert.Equal(t, tt.body, b, "attempt %d", i+1)
				}
			}
		})
	}
}

func TestDo_ForwardsHeaders(t *testing.T) {
	t.Parallel()

	res := newFakeResource(t, http.StatusOK)
	c := res.client(nil)

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	_, err := send(ctx, t, c, http.MethodGet, "/todos", "")
	require.NoError(t, err)

	_, err = send(context.Background(), t, c, http.MethodGet, "/todos", "")
	require.NoError(t, err)

	require.Len(t, res.headers, 2)
	for _, h := range res.headers {
		assert.Equal(t, "todosync", h.Get("User-Agent"))
		assert.Equal(t, "application/json", h.Get("Accept"))
	}
	assert.Equal(t, "req-123", res.headers[0].Get("X-Request-ID"))
	assert.Empty(t, res.headers[1].Values("X-Request-ID"))
}

func TestDo_TransportErrorIsNetwork(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := resourceConfig(url)
	cfg.Retry.MaxAttempts = 1
	c := httpclient.New(cfg, "todo-resource", nil, nil)

	resp, err := send(context.Background(), t, c, http.MethodGet, "/todos", "")
	assert.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Contains(t, err.Error(), "todo-resource")
}

func TestDo_CanceledContextIsNotClassified(t *testing.T) {
	t.Parallel()

	res := newFakeResource(t, http.StatusInternalServerError)
	c := res.client(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := send(ctx, t, c, http.MethodGet, "/todos", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNetwork)
	assert.NotErrorIs(t, err, domain.ErrUnavailable)
}

func TestDo_BreakerLifecycle(t *testing.T) {
	t.Parallel()

	res := newFakeResource(t, http.StatusInternalServerError, http.StatusOK)
	c := res.client(singleShot)
	ctx := context.Background()

	require.NoError(t, c.HealthCheck(ctx), "fresh breaker is closed")

	_, _ = send(ctx, t, c, http.MethodGet, "/todos", "")
	err := c.HealthCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")

	resp, err := send(ctx, t, c, http.MethodGet, "/todos", "")
	assert.Nil(t, resp)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.True(t, domain.IsRemoteFailure(err), "open breaker is a remote failure")
	assert.Equal(t, int32(1), res.hits.Load(), "open breaker must not reach the resource")

	time.Sleep(150 * time.Millisecond)
	err = c.HealthCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degraded")

	resp, err = send(ctx, t, c, http.MethodGet, "/todos", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, c.HealthCheck(ctx))
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "todosync")
	require.NoError(t, err)

	res := newFakeResource(t, http.StatusOK)
	c := httpclient.New(resourceConfig(res.srv.URL+"/"), "todo-resource", metrics, nil)

	assert.Equal(t, "todo-resource", c.Name())
	assert.Equal(t, res.srv.URL, c.BaseURL(), "trailing slash trimmed")

	resp, err := send(context.Background(), t, c, http.MethodGet, "/todos", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
