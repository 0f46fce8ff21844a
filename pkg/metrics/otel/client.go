// Package otel implements metrics.Client on top of an OpenTelemetry meter.
package otel

import (
	"context"
	"sync"

	"github.com/architeacher/inventory/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Client struct {
	meter      metric.Meter
	counters   sync.Map
	histograms sync.Map
	shutdown   func(context.Context) error
}

// NewClient creates instruments lazily on first use of a key.
// shutdown may be nil when the meter provider is owned elsewhere.
func NewClient(meter metric.Meter, shutdown func(context.Context) error) *Client {
	return &Client{
		meter:    meter,
		shutdown: shutdown,
	}
}

func (c *Client) Inc(ctx context.Context, key string, value int64, attributes ...attribute.KeyValue) {
	counter, err := c.counter(key)
	if err != nil {
		return
	}

	counter.Add(ctx, value, metric.WithAttributes(attributes...))
}

func (c *Client) Observe(ctx context.Context, key string, value float64, attributes ...attribute.KeyValue) {
	histogram, err := c.histogram(key)
	if err != nil {
		return
	}

	histogram.Record(ctx, value, metric.WithAttributes(attributes...))
}

func (c *Client) Shutdown(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}

	return c.shutdown(ctx)
}

func (c *Client) counter(key string) (metric.Int64Counter, error) {
	if cached, ok := c.counters.Load(key); ok {
		return cached.(metric.Int64Counter), nil
	}

	counter, err := metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{Unit: "1"}, key)
	if err != nil {
		return nil, err
	}

	actual, _ := c.counters.LoadOrStore(key, counter)

	return actual.(metric.Int64Counter), nil
}

func (c *Client) histogram(key string) (metric.Float64Histogram, error) {
	if cached, ok := c.histograms.Load(key); ok {
		return cached.(metric.Float64Histogram), nil
	}

	histogram, err := metrics.RegisterFloat64Histogram(c.meter, metrics.Descriptor{Unit: "s"}, key)
	if err != nil {
		return nil, err
	}

	actual, _ := c.histograms.LoadOrStore(key, histogram)

	return actual.(metric.Float64Histogram), nil
}
