package rotvis

import (
	"testing"

	"github.com/Flafla2/Rotation-Vis/orient"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for c := 0; c < 3; c++ {
		assert.InDelta(t, want[c], got[c], tolerance, "want %v, got %v", want, got)
	}
}

func TestPreviewModule_FollowsInterpolator(t *testing.T) {
	app := NewApp().UseModules(TimeModule{}, OrientationModule{}, PreviewModule{})
	interp := MustResource[Interpolator](app, "test")
	preview, ok := Resource[Preview](app)
	require.True(t, ok)

	assert.Equal(t, 1, preview.Syncs)
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, preview.Start.Position)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, preview.End.Position)

	// alpha is 0: the output does not move, but the end indicator must.
	interp.SetFromEuler(End, AxisZ, 90)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, preview.End.Direction(AxisX))
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, preview.Interpolated.Direction(AxisX))

	interp.SetParameter(1)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, preview.Interpolated.Direction(AxisX))
	assertSameRotation(t, interp.Interpolated(), preview.Model.Rotation)
	assert.True(t, preview.Model.Dirty)
}

func TestPreviewModule_RequiresOrientation(t *testing.T) {
	assert.Panics(t, func() { NewApp().UseModules(PreviewModule{}) })
}

func TestAxesGizmo(t *testing.T) {
	g := NewAxesGizmo(mgl32.Vec3{1, 0, 0}, 2)
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, g.Lines[AxisX].End)
	assert.Equal(t, GizmoColorY, g.Lines[AxisY].Color)

	g.SetRotation(orient.FromEuler(mgl32.Vec3{90, 0, 0}))
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, g.Direction(AxisY))

	// Non-unit rotations keep their length out of the drawn axes.
	g.SetRotation(mgl32.Quat{W: 2})
	assertVecNear(t, mgl32.Vec3{3, 0, 0}, g.Lines[AxisX].End)
	assert.Equal(t, mgl32.Quat{W: 2}, g.Rotation)
}

func TestTransform_ObjectToWorld(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Dirty = false

	tr.SetRotation(mgl32.QuatIdent())
	assert.False(t, tr.Dirty, "same rotation does not dirty")

	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), orient.AxisZ))
	assert.True(t, tr.Dirty)

	p := tr.ObjectToWorld().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVecNear(t, mgl32.Vec3{1, 3, 3}, p.Vec3())
}
