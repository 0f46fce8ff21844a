package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/middleware"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

type recordedMetric struct {
	key   string
	value float64
	attrs []attribute.KeyValue
}

type recordingMetricsClient struct {
	mu       sync.Mutex
	counters []recordedMetric
	observed []recordedMetric
}

func (c *recordingMetricsClient) Inc(_ context.Context, key string, value int64, attrs ...attribute.KeyValue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counters = append(c.counters, recordedMetric{key: key, value: float64(value), attrs: attrs})
}

func (c *recordingMetricsClient) Observe(_ context.Context, key string, value float64, attrs ...attribute.KeyValue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observed = append(c.observed, recordedMetric{key: key, value: value, attrs: attrs})
}

func (c *recordingMetricsClient) Shutdown(context.Context) error {
	return nil
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	client := &recordingMetricsClient{}
	routeOf := func(*http.Request) string { return "/v1/devices/{id}" }
	handler := middleware.NewMetricsMiddleware(client, routeOf).Middleware(okHandler(http.StatusNotFound, `{"code":"NOT_FOUND"}`))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/devices/42", nil))

	require.Len(t, client.counters, 1)
	require.Equal(t, "http.requests.total", client.counters[0].key)
	require.InDelta(t, 1, client.counters[0].value, 0)
	require.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("http.method", http.MethodGet),
		attribute.String("http.route", "/v1/devices/{id}"),
		attribute.String("http.status_code", "404"),
	}, client.counters[0].attrs)

	require.Len(t, client.observed, 2)
	require.Equal(t, "http.request.duration", client.observed[0].key)
	require.Equal(t, "http.response.size", client.observed[1].key)
	require.InDelta(t, float64(len(`{"code":"NOT_FOUND"}`)), client.observed[1].value, 0)
}
