package rotvis

import (
	"testing"
	"time"

	"github.com/Flafla2/Rotation-Vis/orient"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrientationApp(t *testing.T, mod OrientationModule) (*App, *Interpolator) {
	t.Helper()
	app := NewAppBuilder().
		UseModule(TimeModule{}, mod).
		Build()
	interp, ok := Resource[Interpolator](app)
	require.True(t, ok)
	return app, interp
}

func TestOrientationModule_Install(t *testing.T) {
	_, interp := newOrientationApp(t, OrientationModule{Rate: 90, Mode: QuaternionSlerp, Alpha: 0.25})

	assert.Equal(t, float32(90), interp.Rate())
	assert.Equal(t, QuaternionSlerp, interp.Mode())
	assert.Equal(t, float32(0.25), interp.Parameter())

	_, interp = newOrientationApp(t, OrientationModule{})
	assert.Equal(t, DefaultRotationRate, interp.Rate())
	assert.Equal(t, EulerLerp, interp.Mode())
}

func TestOrientationModule_TicksRotation(t *testing.T) {
	app, interp := newOrientationApp(t, OrientationModule{})
	interp.SelectRotation(RotationSelection{Target: End, Axis: AxisY, Space: World})

	// Press and hold for one second of frames, then release.
	interp.BeginRotate(CCW)
	for i := 0; i < 50; i++ {
		app.Tick(20 * time.Millisecond)
	}
	interp.EndRotate(CCW)
	app.Tick(time.Second)

	want := mgl32.QuatRotate(mgl32.DegToRad(60), orient.AxisY)
	assertSameRotation(t, want, interp.Quat(End))
}

func TestOrientationModule_RequiresTime(t *testing.T) {
	app := NewApp().UseModules(OrientationModule{})
	assert.Panics(t, func() { app.Tick(time.Millisecond) })
}
