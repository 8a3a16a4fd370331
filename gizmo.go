package rotvis

import (
	"github.com/Flafla2/Rotation-Vis/orient"
	"github.com/go-gl/mathgl/mgl32"
)

// GizmoLine is a colored world-space segment.
type GizmoLine struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
	Color [4]float32
}

var (
	GizmoColorX = [4]float32{0.9, 0.2, 0.2, 1}
	GizmoColorY = [4]float32{0.2, 0.9, 0.2, 1}
	GizmoColorZ = [4]float32{0.2, 0.4, 0.9, 1}
)

var gizmoAxisColors = [3][4]float32{GizmoColorX, GizmoColorY, GizmoColorZ}

// AxesGizmo draws the local X, Y and Z axes of a rotation as three lines
// from Position.
type AxesGizmo struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Length   float32
	Lines    [3]GizmoLine
}

func NewAxesGizmo(position mgl32.Vec3, length float32) AxesGizmo {
	g := AxesGizmo{Position: position, Length: length}
	g.SetRotation(mgl32.QuatIdent())
	return g
}

// SetRotation points the three lines along the rotated axes. Non-unit
// rotations are normalized for display only.
func (g *AxesGizmo) SetRotation(q mgl32.Quat) {
	g.Rotation = q
	unit := q
	if l := q.Len(); l > 0 {
		unit = q.Scale(1 / l)
	}
	for axis := 0; axis < 3; axis++ {
		dir := unit.Rotate(orient.AxisVector(axis))
		g.Lines[axis] = GizmoLine{
			Start: g.Position,
			End:   g.Position.Add(dir.Mul(g.Length)),
			Color: gizmoAxisColors[axis],
		}
	}
}

// Direction returns the unit direction of one drawn axis.
func (g *AxesGizmo) Direction(axis Axis) mgl32.Vec3 {
	l := g.Lines[axis]
	return l.End.Sub(l.Start).Normalize()
}
