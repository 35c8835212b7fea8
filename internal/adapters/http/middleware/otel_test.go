package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and so do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantName   string
		wantRoute  string
		wantStatus int64
		wantError  bool
	}{
		{
			name:       "route replaces todo id",
			method:     http.MethodPatch,
			target:     "/api/v1/todos/srv-9",
			wantName:   "HTTP PATCH /api/v1/todos/{id}",
			wantRoute:  "/api/v1/todos/{id}",
			wantStatus: http.StatusOK,
		},
		{
			name:       "5xx marks the span",
			method:     http.MethodPost,
			target:     "/api/v1/refresh",
			wantName:   "HTTP POST /api/v1/refresh",
			wantRoute:  "/api/v1/refresh",
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
		{
			name:       "unmatched keeps the raw path",
			method:     http.MethodGet,
			target:     "/nope",
			wantName:   "HTTP GET /nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			serve(todoRoutes(middleware.OpenTelemetry(nil)), tt.method, tt.target, nil)

			spans := exporter.GetSpans().Snapshots()
			require.Len(t, spans, 1)
			span := spans[0]
			attrs := spanAttrs(span)

			assert.Equal(t, tt.wantName, span.Name())
			assert.Equal(t, tt.method, attrs["http.method"].AsString())
			assert.Equal(t, tt.wantStatus, attrs["http.status_code"].AsInt64())
			assert.Equal(t, tt.wantRoute, attrs["http.route"].AsString())
			if tt.wantError {
				assert.Equal(t, codes.Error, span.Status().Code)
			} else {
				assert.NotEqual(t, codes.Error, span.Status().Code)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	serve(todoRoutes(middleware.OpenTelemetry(nil)), http.MethodGet, "/api/v1/view", http.Header{
		"Traceparent": {"00-" + traceID + "-00f067aa0ba902b7-01"},
	})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext.TraceID().String())
	assert.True(t, spans[0].Parent.IsRemote())
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "todosync")
	require.NoError(t, err)

	h := todoRoutes(middleware.OpenTelemetry(metrics))
	serve(h, http.MethodDelete, "/api/v1/todos/1", nil)
	serve(h, http.MethodDelete, "/api/v1/todos/2", nil)
	serve(h, http.MethodPost, "/api/v1/refresh", nil)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	counts := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value("http.route")
				result, _ := dp.Attributes.Value("result")
				counts[route.AsString()+" "+result.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"/api/v1/todos/{id} success": 2,
		"/api/v1/refresh error":      1,
	}, counts)
}
