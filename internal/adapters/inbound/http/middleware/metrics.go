package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/inventory/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpRouteKey      = "http.route"
	httpStatusCodeKey = "http.status_code"

	httpRequestTotal    = "http.requests.total"
	httpRequestDuration = "http.request.duration"
	httpResponseSize    = "http.response.size"
)

type MetricsMiddleware struct {
	metricsClient metrics.Client
	routeOf       func(*http.Request) string
}

// NewMetricsMiddleware labels requests by routeOf, which should return the route pattern rather than
// the raw path so that ids do not explode the label space.
func NewMetricsMiddleware(metricsClient metrics.Client, routeOf func(*http.Request) string) *MetricsMiddleware {
	if routeOf == nil {
		routeOf = func(r *http.Request) string { return r.URL.Path }
	}

	return &MetricsMiddleware{
		metricsClient: metricsClient,
		routeOf:       routeOf,
	}
}

func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		wrapped := NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		m.record(r.Context(), r.Method, m.routeOf(r), wrapped.StatusCode(), time.Since(startTime), wrapped.BytesWritten())
	})
}

func (m *MetricsMiddleware) record(
	ctx context.Context,
	method, route string,
	statusCode int,
	duration time.Duration,
	responseSize uint64,
) {
	attrs := []attribute.KeyValue{
		attribute.String(httpMethodKey, method),
		attribute.String(httpRouteKey, route),
		attribute.String(httpStatusCodeKey, strconv.Itoa(statusCode)),
	}

	m.metricsClient.Inc(ctx, httpRequestTotal, 1, attrs...)
	m.metricsClient.Observe(ctx, httpRequestDuration, duration.Seconds(), attrs...)
	m.metricsClient.Observe(ctx, httpResponseSize, float64(responseSize), attrs...)
}
