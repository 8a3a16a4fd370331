package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

const (
	// Past this |m12| the Y and Z angles are recovered from the terms that
	// stay large near the pole.
	poleBand = 0.999
	// cos(x) below this is exact gimbal lock: Z is folded into Y.
	gimbalEpsilon = 1e-6
)

// FromEuler builds a rotation from Euler angles in degrees.
// Z is applied first, then X, then Y: q = Ry * Rx * Rz. This is the host
// engine's convention, not a literal X-then-Y-then-Z order.
func FromEuler(e mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(e.X()), AxisX)
	qy := mgl32.QuatRotate(mgl32.DegToRad(e.Y()), AxisY)
	qz := mgl32.QuatRotate(mgl32.DegToRad(e.Z()), AxisZ)

	return qy.Mul(qx).Mul(qz)
}

// ToEuler returns the Euler angles (degrees, each in [0,360)) of q.
// q is read as-is: a non-unit quaternion is not normalized first.
func ToEuler(q mgl32.Quat) mgl32.Vec3 {
	x, y, z, w := float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W)

	m00 := 1 - 2*(y*y+z*z)
	m01 := 2 * (x*y - w*z)
	m02 := 2 * (x*z + w*y)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)
	m12 := 2 * (y*z - w*x)
	m20 := 2 * (x*z - w*y)
	m21 := 2 * (y*z + w*x)
	m22 := 1 - 2*(x*x+y*y)

	sx := -m12
	if math.Abs(sx) < poleBand {
		return eulerDegrees(math.Asin(sx), math.Atan2(m02, m22), math.Atan2(m10, m11))
	}

	// Near the pole asin loses precision, and the small terms only pin down
	// one of y+z and y-z. The other comes from the large terms:
	// m00+m21 = (1+sx)cos(y-z), m01-m20 = (1+sx)sin(y-z),
	// m00-m21 = (1-sx)cos(y+z), -(m01+m20) = (1-sx)sin(y+z).
	cx := math.Hypot(m10, m11)
	ex := math.Atan2(sx, cx)
	var ey, ez float64
	switch {
	case cx < gimbalEpsilon && sx > 0:
		ey = math.Atan2(m01-m20, m00+m21)
	case cx < gimbalEpsilon:
		ey = math.Atan2(-(m01 + m20), m00-m21)
	case sx > 0:
		ey, ez = math.Atan2(m02, m22), math.Atan2(m10, m11)
		r := wrapRadians(math.Atan2(m01-m20, m00+m21) - (ey - ez))
		ey, ez = ey+r/2, ez-r/2
	default:
		ey, ez = math.Atan2(m02, m22), math.Atan2(m10, m11)
		r := wrapRadians(math.Atan2(-(m01+m20), m00-m21) - (ey + ez))
		ey, ez = ey+r/2, ez+r/2
	}
	return eulerDegrees(ex, ey, ez)
}

// wrapRadians maps a into [-pi, pi].
func wrapRadians(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

func eulerDegrees(ex, ey, ez float64) mgl32.Vec3 {
	return mgl32.Vec3{
		normalizeDegrees(ex * 180 / math.Pi),
		normalizeDegrees(ey * 180 / math.Pi),
		normalizeDegrees(ez * 180 / math.Pi),
	}
}

// NormalizeAngle wraps deg into [0,360).
func NormalizeAngle(deg float32) float32 {
	return normalizeDegrees(float64(deg))
}

func normalizeDegrees(deg float64) float32 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	out := float32(deg)
	// 359.99999995 rounds up to 360 in float32; -0 also reads back as 0.
	if out >= 360 || out == 0 {
		return 0
	}
	return out
}

// AxisVector returns the unit vector for axis index 0, 1 or 2.
func AxisVector(axis int) mgl32.Vec3 {
	switch axis {
	case 0:
		return AxisX
	case 1:
		return AxisY
	default:
		return AxisZ
	}
}

// RotateWorld applies a rotation of deg degrees about a world axis on the
// left of q, so the axis stays fixed in world space.
func RotateWorld(q mgl32.Quat, axis mgl32.Vec3, deg float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(deg), axis.Normalize()).Mul(q)
}

// RotateEuler adds deg to one Euler component of q and rebuilds it.
// This is an Euler increment and keeps all gimbal artifacts.
func RotateEuler(q mgl32.Quat, axis int, deg float32) mgl32.Quat {
	e := ToEuler(q)
	e[axis] += deg
	return FromEuler(e)
}
