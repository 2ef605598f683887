package observability

import (
	"context"
	"log/slog"
	"time"
)

// Configure wraps one layer's configuration resolution with logging,
// metrics and tracing. The wrapped function keeps the resolver's
// purity; all side effects live here.
//
// Example:
//
//	cfg, err := observability.Configure(ctx, "evs", logger, recorder,
//	    func() (evs.Config, error) { return evs.ConfigFromSource(src) })
func Configure[T any](ctx context.Context, layer string, logger *slog.Logger, rec MetricsRecorder, fn func() (T, error)) (T, error) {
	ctx, span := StartConfigureSpan(ctx, layer)

	done := TimedOperation()
	LogConfigureStart(logger, layer)

	cfg, err := fn()
	elapsed := done()

	if rec != nil {
		rec.RecordConfigure(ctx, layer, err == nil, time.Duration(elapsed*float64(time.Millisecond)))
	}
	EndSpanWithError(span, err)

	if err != nil {
		LogConfigureError(logger, layer, err)
		return cfg, err
	}
	LogConfigureComplete(logger, layer, elapsed)
	return cfg, nil
}
