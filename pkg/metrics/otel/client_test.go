package otel_test

import (
	"context"
	"testing"

	metricsotel "github.com/architeacher/inventory/pkg/metrics/otel"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestClientRecordsCountersAndHistograms(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	client := metricsotel.NewClient(provider.Meter("test"), provider.Shutdown)

	ctx := context.Background()
	client.Inc(ctx, "commands.create_device.success", 1, attribute.String("kind", "command"))
	client.Inc(ctx, "commands.create_device.success", 2, attribute.String("kind", "command"))
	client.Observe(ctx, "commands.create_device.duration", 0.25)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	sum, ok := byName["commands.create_device.success"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.Equal(t, int64(3), sum.DataPoints[0].Value)

	histogram, ok := byName["commands.create_device.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	require.Equal(t, uint64(1), histogram.DataPoints[0].Count)

	require.NoError(t, client.Shutdown(ctx))
}

func TestClientShutdownWithoutOwner(t *testing.T) {
	t.Parallel()

	provider := sdkmetric.NewMeterProvider()
	client := metricsotel.NewClient(provider.Meter("test"), nil)

	require.NoError(t, client.Shutdown(context.Background()))
}
