package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/groupwire/gconf/pkg/gconf"
)

// setupMetricsTest creates a test meter provider and returns a reader to
// collect metrics from, plus a cleanup function.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordResolve(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("records resolution count with key attribute", func(t *testing.T) {
		m.RecordResolve(ctx, gconf.EVSSuspectTimeout, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "gconf.param.resolutions")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)

		found := false
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "key" && attr.Value.AsString() == gconf.EVSSuspectTimeout {
					found = true
					assert.GreaterOrEqual(t, dp.Value, int64(1))
				}
			}
		}
		assert.True(t, found, "Expected datapoint for evs.suspect_timeout")
	})

	t.Run("records failures with the error kind", func(t *testing.T) {
		pe := &gconf.ParamError{
			Kind: gconf.KindBelowMin,
			Key:  gconf.GMCastMCastTTL,
		}
		m.RecordResolve(ctx, gconf.GMCastMCastTTL, pe)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "gconf.param.errors")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)

		found := false
		for _, dp := range sum.DataPoints {
			var key, kind string
			for _, attr := range dp.Attributes.ToSlice() {
				switch attr.Key {
				case "key":
					key = attr.Value.AsString()
				case "kind":
					kind = attr.Value.AsString()
				}
			}
			if key == gconf.GMCastMCastTTL {
				found = true
				assert.Equal(t, "below_min", kind)
			}
		}
		assert.True(t, found, "Expected error datapoint for gmcast.mcast_ttl")
	})

	t.Run("does not record error when nil", func(t *testing.T) {
		m.RecordResolve(ctx, gconf.PCScheme, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "gconf.param.errors")
		if metric == nil {
			return
		}
		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "key" {
					assert.NotEqual(t, gconf.PCScheme, attr.Value.AsString())
				}
			}
		}
	})
}

func TestRecordConfigure(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("records configure count and latency", func(t *testing.T) {
		m.RecordConfigure(ctx, "evs", true, 5*time.Millisecond)

		rm := collectMetrics(t, reader)

		configures := findMetric(rm, "gconf.layer.configures")
		require.NotNil(t, configures)
		sum, ok := configures.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)

		latency := findMetric(rm, "gconf.layer.latency_ms")
		require.NotNil(t, latency)
		hist, ok := latency.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)
	})

	t.Run("records failed configures", func(t *testing.T) {
		m.RecordConfigure(ctx, "gmcast", false, time.Millisecond)

		rm := collectMetrics(t, reader)
		configures := findMetric(rm, "gconf.layer.configures")
		require.NotNil(t, configures)

		sum, ok := configures.Data.(metricdata.Sum[int64])
		require.True(t, ok)

		found := false
		for _, dp := range sum.DataPoints {
			var layer string
			var success bool
			for _, attr := range dp.Attributes.ToSlice() {
				switch attr.Key {
				case "layer":
					layer = attr.Value.AsString()
				case "success":
					success = attr.Value.AsBool()
				}
			}
			if layer == "gmcast" && !success {
				found = true
			}
		}
		assert.True(t, found, "Expected failed configure datapoint for gmcast")
	})
}

func TestNewOtelMetrics_Creation(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NotNil(t, m.resolutions)
	assert.NotNil(t, m.resolutionErrors)
	assert.NotNil(t, m.configures)
	assert.NotNil(t, m.configureLatency)
}
