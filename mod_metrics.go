package rotvis

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Flafla2/Rotation-Vis"

// MetricsModule counts interpolator events on OTel instruments. Requires
// OrientationModule. Uses the global meter provider when Provider is nil,
// which is a no-op unless the host configured one.
type MetricsModule struct {
	Provider metric.MeterProvider
}

type Metrics struct {
	orientationChanges  metric.Int64Counter
	interpolatedChanges metric.Int64Counter
	editsRejected       metric.Int64Counter
}

func (mod MetricsModule) Install(app *App, cmd *Commands) {
	provider := mod.Provider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	m, err := NewMetrics(provider.Meter(instrumentationName))
	if err != nil {
		panic(fmt.Sprintf("MetricsModule: %v", err))
	}

	interp := MustResource[Interpolator](app, "MetricsModule")
	m.Observe(interp)
	cmd.AddResources(m)
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var m Metrics
	var err error

	m.orientationChanges, err = meter.Int64Counter(
		"rotvis.orientation.changes",
		metric.WithDescription("Start/end orientation mutations"),
	)
	if err != nil {
		return nil, fmt.Errorf("create orientation counter: %w", err)
	}

	m.interpolatedChanges, err = meter.Int64Counter(
		"rotvis.interpolated.changes",
		metric.WithDescription("Changes of the interpolated output"),
	)
	if err != nil {
		return nil, fmt.Errorf("create interpolated counter: %w", err)
	}

	m.editsRejected, err = meter.Int64Counter(
		"rotvis.edits.rejected",
		metric.WithDescription("Field edits discarded as malformed"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}

	return &m, nil
}

// Observe subscribes the counters to interp's events.
func (m *Metrics) Observe(interp *Interpolator) {
	ctx := context.Background()

	interp.OnOrientationChanged(func(c OrientationChange) {
		m.orientationChanges.Add(ctx, 1,
			metric.WithAttributes(attribute.String("target", c.Target.String())))
	})
	interp.OnInterpolatedChanged(func(mgl32.Quat) {
		m.interpolatedChanges.Add(ctx, 1)
	})
	interp.OnEditRejected(func(r EditRejection) {
		m.editsRejected.Add(ctx, 1, metric.WithAttributes(
			attribute.String("target", r.Target.String()),
			attribute.String("field", r.Field.String()),
		))
	})
}
