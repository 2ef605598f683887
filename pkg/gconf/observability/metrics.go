package observability

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/groupwire/gconf/pkg/gconf"
)

// MetricsRecorder records configuration resolution metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolve records one parameter resolution and its outcome.
	RecordResolve(ctx context.Context, key string, err error)

	// RecordConfigure records a layer configuration completion.
	RecordConfigure(ctx context.Context, layer string, success bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolutions      metric.Int64Counter
	resolutionErrors metric.Int64Counter
	configures       metric.Int64Counter
	configureLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("gconf")

	resolutions, err := meter.Int64Counter("gconf.param.resolutions",
		metric.WithDescription("Number of parameter resolutions"),
	)
	if err != nil {
		return nil, err
	}

	resolutionErrors, err := meter.Int64Counter("gconf.param.errors",
		metric.WithDescription("Number of parameter resolution failures"),
	)
	if err != nil {
		return nil, err
	}

	configures, err := meter.Int64Counter("gconf.layer.configures",
		metric.WithDescription("Number of layer configurations"),
	)
	if err != nil {
		return nil, err
	}

	configureLatency, err := meter.Float64Histogram("gconf.layer.latency_ms",
		metric.WithDescription("Layer configuration latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolutions:      resolutions,
		resolutionErrors: resolutionErrors,
		configures:       configures,
		configureLatency: configureLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolve records one parameter resolution. Failures carry the
// error kind as an attribute.
func (m *otelMetrics) RecordResolve(ctx context.Context, key string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("key", key),
	}
	m.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		var pe *gconf.ParamError
		if errors.As(err, &pe) {
			attrs = append(attrs, attribute.String("kind", pe.Kind.String()))
		}
		m.resolutionErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordConfigure records a layer configuration.
func (m *otelMetrics) RecordConfigure(ctx context.Context, layer string, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("layer", layer),
		attribute.Bool("success", success),
	}
	m.configures.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.configureLatency.Record(ctx, float64(duration.Microseconds())/1e3, metric.WithAttributes(attrs...))
}
