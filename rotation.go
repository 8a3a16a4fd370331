package rotvis

import (
	"github.com/Flafla2/Rotation-Vis/orient"
)

// RotationSelection is the selector state read on every rotation tick.
type RotationSelection struct {
	Target Target
	Axis   Axis
	Space  Space
}

// SelectRotation replaces the selectors. An active rotation picks the new
// values up on its next tick. Invalid selections are ignored.
func (i *Interpolator) SelectRotation(sel RotationSelection) bool {
	if !sel.Target.valid() || !sel.Axis.valid() || (sel.Space != World && sel.Space != Local) {
		return false
	}
	i.selection = sel
	return true
}

func (i *Interpolator) Selection() RotationSelection {
	return i.selection
}

// BeginRotate starts rotating in dir, replacing any rotation in progress.
func (i *Interpolator) BeginRotate(dir Direction) {
	i.rotating = true
	i.direction = dir
	i.logger.Debugf("rotation %s started on %s about %s (%s)",
		dir, i.selection.Target, i.selection.Axis, i.selection.Space)
}

// EndRotate stops the rotation only if it is running in dir.
func (i *Interpolator) EndRotate(dir Direction) {
	if !i.rotating || i.direction != dir {
		return
	}
	i.rotating = false
	i.logger.Debugf("rotation %s stopped", dir)
}

// Rotating reports whether a rotation is active and in which direction.
func (i *Interpolator) Rotating() (bool, Direction) {
	return i.rotating, i.direction
}

// Tick advances an active rotation by dt seconds.
func (i *Interpolator) Tick(dt float32) {
	if !i.rotating || !finite(dt) || dt <= 0 {
		return
	}

	sel := i.selection
	angle := i.rate * dt * i.direction.sign()
	q := i.Quat(sel.Target)

	if sel.Space == World {
		q = orient.RotateWorld(q, orient.AxisVector(int(sel.Axis)), angle)
	} else {
		q = orient.RotateEuler(q, int(sel.Axis), angle)
	}

	i.set(sel.Target, q)
}
