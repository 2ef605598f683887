package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordResolve does nothing.
func (NoopMetrics) RecordResolve(_ context.Context, _ string, _ error) {}

// RecordConfigure does nothing.
func (NoopMetrics) RecordConfigure(_ context.Context, _ string, _ bool, _ time.Duration) {}
