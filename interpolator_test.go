package rotvis

import (
	"math"
	"testing"

	"github.com/Flafla2/Rotation-Vis/orient"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func assertSameRotation(t *testing.T, want, got mgl32.Quat, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, orient.SameRotation(want, got, tolerance), "want %v, got %v %v", want, got, msgAndArgs)
}

func TestInterpolator_Defaults(t *testing.T) {
	interp := NewInterpolator()

	assert.Equal(t, mgl32.QuatIdent(), interp.Quat(Start))
	assert.Equal(t, mgl32.QuatIdent(), interp.Quat(End))
	assert.Equal(t, EulerLerp, interp.Mode())
	assert.Equal(t, float32(0), interp.Parameter())
	assert.Equal(t, DefaultRotationRate, interp.Rate())
	assert.Equal(t, mgl32.QuatIdent(), interp.Interpolated())
}

func TestInterpolator_Options(t *testing.T) {
	interp := NewInterpolator(
		WithRotationRate(90),
		WithMode(QuaternionSlerp),
		WithParameter(2),
		WithLogger(nil),
	)

	assert.Equal(t, float32(90), interp.Rate())
	assert.Equal(t, QuaternionSlerp, interp.Mode())
	assert.Equal(t, float32(1), interp.Parameter())

	interp = NewInterpolator(WithRotationRate(-5), WithRotationRate(float32(math.Inf(1))))
	assert.Equal(t, DefaultRotationRate, interp.Rate())
}

func TestInterpolator_SetFromEuler(t *testing.T) {
	interp := NewInterpolator()

	require.True(t, interp.SetFromEuler(End, AxisZ, 180))
	assert.InDelta(t, 180, interp.Euler(End).Z(), 1e-3)
	assert.Equal(t, mgl32.QuatIdent(), interp.Quat(Start), "start is untouched")

	// Values outside [0,360) are accepted and read back normalized.
	require.True(t, interp.SetFromEuler(Start, AxisY, -30))
	assert.InDelta(t, 330, interp.Euler(Start).Y(), 1e-3)
	require.True(t, interp.SetFromEuler(Start, AxisX, 400))
	assert.InDelta(t, 40, interp.Euler(Start).X(), 1e-3)
}

func TestInterpolator_SetFromEulerKeepsOtherAxes(t *testing.T) {
	interp := NewInterpolator()
	interp.SetFromEuler(Start, AxisX, 10)
	interp.SetFromEuler(Start, AxisY, 20)
	interp.SetFromEuler(Start, AxisZ, 30)

	e := interp.Euler(Start)
	assert.InDelta(t, 10, e.X(), 1e-3)
	assert.InDelta(t, 20, e.Y(), 1e-3)
	assert.InDelta(t, 30, e.Z(), 1e-3)
}

func TestInterpolator_SetFromEulerRejectsNonFinite(t *testing.T) {
	interp := NewInterpolator()
	interp.SetFromEuler(Start, AxisX, 25)
	before := interp.Quat(Start)

	assert.False(t, interp.SetFromEuler(Start, AxisX, float32(math.NaN())))
	assert.False(t, interp.SetFromEuler(Start, AxisY, float32(math.Inf(-1))))
	assert.False(t, interp.SetFromEuler(Start, Axis(7), 1))
	assert.False(t, interp.SetFromEuler(Target(3), AxisX, 1))
	assert.Equal(t, before, interp.Quat(Start))
}

func TestInterpolator_SetFromQuatComponentDoesNotNormalize(t *testing.T) {
	interp := NewInterpolator()

	require.True(t, interp.SetFromQuatComponent(Start, QuatX, 0.5))

	q := interp.Quat(Start)
	assert.Equal(t, float32(0.5), q.V[0])
	assert.Equal(t, float32(0), q.V[1])
	assert.Equal(t, float32(0), q.V[2])
	assert.Equal(t, float32(1), q.W)
	assert.NotEqual(t, float32(1), q.Len(), "quaternion stays non-unit")

	// Euler read-back is taken from the exact stored quaternion.
	assert.Equal(t, orient.ToEuler(mgl32.Quat{W: 1, V: mgl32.Vec3{0.5, 0, 0}}), interp.Euler(Start))
}

func TestInterpolator_SetFromQuatComponentEachComponent(t *testing.T) {
	interp := NewInterpolator()
	interp.SetFromQuatComponent(End, QuatY, 0.25)
	interp.SetFromQuatComponent(End, QuatZ, -0.5)
	interp.SetFromQuatComponent(End, QuatW, 0.75)

	assert.Equal(t, mgl32.Quat{W: 0.75, V: mgl32.Vec3{0, 0.25, -0.5}}, interp.Quat(End))
	assert.False(t, interp.SetFromQuatComponent(End, QuatComponent(9), 1))
	assert.False(t, interp.SetFromQuatComponent(End, QuatW, float32(math.NaN())))
	assert.Equal(t, mgl32.Quat{W: 0.75, V: mgl32.Vec3{0, 0.25, -0.5}}, interp.Quat(End))
}

func TestInterpolator_EulerLerpMidpoint(t *testing.T) {
	interp := NewInterpolator()
	interp.SetFromEuler(End, AxisZ, 180)
	interp.SetParameter(0.5)

	assertSameRotation(t, orient.FromEuler(mgl32.Vec3{0, 0, 90}), interp.Interpolated())
}

func TestInterpolator_SlerpEndpoints(t *testing.T) {
	interp := NewInterpolator(WithMode(QuaternionSlerp))
	interp.SetFromEuler(Start, AxisX, 30)
	interp.SetFromEuler(End, AxisY, 200)
	interp.SetFromEuler(End, AxisZ, 45)

	interp.SetParameter(0)
	assertSameRotation(t, interp.Quat(Start), interp.Interpolated())

	interp.SetParameter(1)
	assertSameRotation(t, interp.Quat(End), interp.Interpolated())
}

func TestInterpolator_ModesDiffer(t *testing.T) {
	interp := NewInterpolator(WithParameter(0.5))
	interp.SetFromEuler(Start, AxisY, 350)
	interp.SetFromEuler(End, AxisY, 10)

	// Euler lerp goes the long way through 180; slerp takes the short arc through 0.
	assertSameRotation(t, orient.FromEuler(mgl32.Vec3{0, 180, 0}), interp.Interpolated())

	interp.SetMode(QuaternionSlerp)
	assertSameRotation(t, mgl32.QuatIdent(), interp.Interpolated())

	interp.SetMode(InterpolationMode(5))
	assert.Equal(t, QuaternionSlerp, interp.Mode())
}

func TestInterpolator_SetParameterClamps(t *testing.T) {
	interp := NewInterpolator()

	interp.SetParameter(1.5)
	assert.Equal(t, float32(1), interp.Parameter())
	interp.SetParameter(-0.25)
	assert.Equal(t, float32(0), interp.Parameter())
	interp.SetParameter(0.3)
	interp.SetParameter(float32(math.NaN()))
	assert.Equal(t, float32(0.3), interp.Parameter())
}

func TestInterpolator_Observers(t *testing.T) {
	interp := NewInterpolator()

	var changes []OrientationChange
	var outputs []mgl32.Quat
	interp.OnOrientationChanged(func(c OrientationChange) { changes = append(changes, c) })
	removeOutput := interp.OnInterpolatedChanged(func(q mgl32.Quat) { outputs = append(outputs, q) })

	interp.SetFromEuler(End, AxisY, 90)
	require.Len(t, changes, 1)
	assert.Equal(t, End, changes[0].Target)
	assert.Equal(t, interp.Quat(End), changes[0].Quat)
	assert.Equal(t, interp.Euler(End), changes[0].Euler)
	// alpha is 0, so the output still equals start.
	assert.Empty(t, outputs)

	interp.SetParameter(1)
	require.Len(t, outputs, 1)
	assert.Equal(t, interp.Interpolated(), outputs[0])

	interp.SetParameter(1)
	assert.Len(t, outputs, 1, "unchanged output is not re-published")

	removeOutput()
	interp.SetParameter(0.5)
	assert.Len(t, outputs, 1)

	interp.ClearListeners()
	interp.SetFromEuler(Start, AxisX, 5)
	assert.Len(t, changes, 1)
}

func TestInterpolator_ListenerCanRemoveItself(t *testing.T) {
	interp := NewInterpolator()
	calls := 0
	var remove func()
	remove = interp.OnOrientationChanged(func(OrientationChange) {
		calls++
		remove()
	})

	interp.SetFromEuler(Start, AxisX, 1)
	interp.SetFromEuler(Start, AxisX, 2)
	assert.Equal(t, 1, calls)
}
