package rotvis

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type countingProvider struct {
	noop.MeterProvider
	meter *countingMeter
}

func (p *countingProvider) Meter(string, ...metric.MeterOption) metric.Meter {
	return p.meter
}

type countingMeter struct {
	noop.Meter
	mu     sync.Mutex
	counts map[string]int64
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return &countingCounter{name: name, meter: m}, nil
}

func (m *countingMeter) count(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

type countingCounter struct {
	noop.Int64Counter
	name  string
	meter *countingMeter
}

func (c *countingCounter) Add(_ context.Context, incr int64, _ ...metric.AddOption) {
	c.meter.mu.Lock()
	c.meter.counts[c.name] += incr
	c.meter.mu.Unlock()
}

func TestMetricsModule_CountsEvents(t *testing.T) {
	meter := &countingMeter{counts: map[string]int64{}}
	app := NewApp().UseModules(
		TimeModule{},
		OrientationModule{Alpha: 1},
		MetricsModule{Provider: &countingProvider{meter: meter}},
	)
	_, ok := Resource[Metrics](app)
	require.True(t, ok)
	interp := MustResource[Interpolator](app, "test")

	interp.SetFromEuler(End, AxisY, 45)
	interp.SetFromEuler(Start, AxisX, 10)
	interp.EditField(End, EulerZField, "abc")

	assert.Equal(t, int64(2), meter.count("rotvis.orientation.changes"))
	assert.Equal(t, int64(1), meter.count("rotvis.interpolated.changes"), "alpha 1 ignores start")
	assert.Equal(t, int64(1), meter.count("rotvis.edits.rejected"))
}

func TestMetricsModule_DefaultProvider(t *testing.T) {
	app := NewApp().UseModules(TimeModule{}, OrientationModule{}, MetricsModule{})
	_, ok := Resource[Metrics](app)
	assert.True(t, ok)
}
