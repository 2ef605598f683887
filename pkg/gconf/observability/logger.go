// Package observability provides opt-in observability around
// configuration resolution: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything here is opt-in with no-op implementations when disabled.
// The resolver itself stays a pure function; instrumentation attaches
// at the layer-configuration boundary.
package observability

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/groupwire/gconf/pkg/gconf"
)

// ConnectionLogger returns a logger tagged with the source's scheme
// and a fresh connection-attempt id. A Source is built once per
// connection attempt, so tagging at construction groups every
// parameter message of the attempt.
func ConnectionLogger(logger *slog.Logger, src *gconf.Source) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("conn_id", uuid.NewString()),
		slog.String("scheme", src.Scheme()),
	)
}

// LogConfigureStart logs the start of a layer's configuration.
func LogConfigureStart(logger *slog.Logger, layer string) {
	if logger == nil {
		return
	}
	logger.Debug("layer configuration starting",
		slog.String("layer", layer),
	)
}

// LogConfigureComplete logs successful layer configuration.
func LogConfigureComplete(logger *slog.Logger, layer string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("layer configured",
		slog.String("layer", layer),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConfigureError logs a layer configuration failure. Configuration
// errors are static, so callers fail startup instead of retrying.
func LogConfigureError(logger *slog.Logger, layer string, err error) {
	if logger == nil {
		return
	}
	logger.Error("layer configuration failed",
		slog.String("layer", layer),
		slog.String("error", err.Error()),
	)
}

// MaskedDebug logs msg only when flag is set in mask. The evs debug
// and info log masks gate protocol diagnostics this way.
func MaskedDebug(logger *slog.Logger, mask, flag gconf.Mask, msg string, args ...any) {
	if logger == nil || mask&flag == 0 {
		return
	}
	logger.Debug(msg, args...)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1e3
	}
}
