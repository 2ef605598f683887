package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/groupwire/gconf/pkg/gconf"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
}

func TestNoopMetrics_RecordResolve(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordResolve(context.Background(), gconf.EVSSuspectTimeout, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordResolve(context.Background(), gconf.EVSSuspectTimeout, &gconf.ParamError{
				Kind: gconf.KindMissing,
				Key:  gconf.EVSSuspectTimeout,
			})
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordResolve(nil, "", nil)
		})
	})
}

func TestNoopMetrics_RecordConfigure(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with success=true", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordConfigure(context.Background(), "evs", true, 5*time.Millisecond)
		})
	})

	t.Run("does not panic with success=false", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordConfigure(context.Background(), "evs", false, 0)
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordConfigure(nil, "", true, 0)
		})
	})
}
