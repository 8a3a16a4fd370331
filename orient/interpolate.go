package orient

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LerpEuler interpolates the Euler triples of a and b component by component
// and rebuilds a quaternion from the result. It interpolates angle numbers,
// so it wraps badly across 0/360 and near gimbal lock.
func LerpEuler(a, b mgl32.Quat, t float32) mgl32.Quat {
	t = mgl32.Clamp(t, 0, 1)
	ea, eb := ToEuler(a), ToEuler(b)
	return FromEuler(ea.Add(eb.Sub(ea).Mul(t)))
}

// Slerp interpolates along the shortest great-circle arc between a and b.
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	t = mgl32.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t)
}

// SameRotation reports whether a and b describe the same rotation within
// eps, treating q and -q as equal.
func SameRotation(a, b mgl32.Quat, eps float32) bool {
	a, b = a.Normalize(), b.Normalize()
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	d := a.Sub(b)
	return mgl32.Abs(d.W) <= eps &&
		mgl32.Abs(d.V[0]) <= eps &&
		mgl32.Abs(d.V[1]) <= eps &&
		mgl32.Abs(d.V[2]) <= eps
}
