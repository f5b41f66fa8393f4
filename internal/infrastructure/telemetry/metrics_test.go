package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/crm/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

func TestNewMeterProvider_Disabled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	cfg := telemetry.MetricsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:4317",
		ExportInterval:    60 * time.Second,
		ServiceName:       "test-service",
	}

	mp, err := telemetry.NewMeterProvider(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, mp)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test-meter"))
	assert.NoError(t, mp.ForceFlush(ctx))
	assert.NoError(t, mp.Shutdown(ctx))
}

func TestNewMeterProvider_Enabled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "test-service",
		Insecure:          true,
	}, logger)
	require.NoError(t, err)
	assert.True(t, mp.IsEnabled())

	_ = mp.Shutdown(ctx)
}

func TestCounterAndTimer(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")
	ctx := context.Background()

	counter, err := telemetry.NewCounter(meter, "test_total", "Test counter", "{items}")
	require.NoError(t, err)
	counter.Inc(ctx, attribute.String("key", "value"))
	counter.Inc(ctx, attribute.String("key", "value"))

	timer, err := telemetry.NewTimer(meter, "test_duration_seconds", "Test timer", telemetry.ServiceDurationBuckets)
	require.NoError(t, err)
	timer.Observe(ctx, 250*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	sum, ok := byName["test_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	hist, ok := byName["test_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.25, hist.DataPoints[0].Sum, 1e-9)
	assert.Equal(t, "s", byName["test_duration_seconds"].Unit)
}

func TestNewCustomerMetrics_NilMeter(t *testing.T) {
	m, err := telemetry.NewCustomerMetrics(nil)

	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
	assert.Nil(t, m)
}

func TestCustomerMetrics_RecordOperation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m, err := telemetry.NewCustomerMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordOperation(ctx, "create", telemetry.OutcomeSuccess, 10*time.Millisecond)
	m.RecordOperation(ctx, "create", telemetry.OutcomeSuccess, 20*time.Millisecond)
	m.RecordOperation(ctx, "create", telemetry.OutcomeConflict, 5*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var counts map[string]int64
	var histogramCount uint64
	for _, md := range rm.ScopeMetrics[0].Metrics {
		switch md.Name {
		case "customer_operations_total":
			sum, ok := md.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			counts = make(map[string]int64)
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value(telemetry.AttrOutcome)
				counts[outcome.AsString()] = dp.Value
			}
		case "customer_operation_duration_seconds":
			hist, ok := md.Data.(metricdata.Histogram[float64])
			require.True(t, ok)
			for _, dp := range hist.DataPoints {
				histogramCount += dp.Count
			}
		}
	}

	assert.Equal(t, int64(2), counts[telemetry.OutcomeSuccess])
	assert.Equal(t, int64(1), counts[telemetry.OutcomeConflict])
	assert.Equal(t, uint64(3), histogramCount)
}

func TestCustomerMetrics_NilReceiver(t *testing.T) {
	var m *telemetry.CustomerMetrics
	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "get", telemetry.OutcomeSuccess, time.Millisecond)
	})
}
