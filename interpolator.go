package rotvis

import (
	"math"
	"slices"

	"github.com/Flafla2/Rotation-Vis/orient"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRotationRate is the continuous rotation speed in degrees per second.
const DefaultRotationRate float32 = 60

// OrientationChange carries both views of a start or end orientation after
// it has been modified.
type OrientationChange struct {
	Target Target
	Euler  mgl32.Vec3
	Quat   mgl32.Quat
}

// EditRejection describes an edit that was discarded. State is unchanged.
type EditRejection struct {
	Target Target
	Field  RotationComponent
	Input  string
	Reason string
}

// Interpolator owns the start and end orientations, the interpolation mode
// and parameter, and the continuous rotation state. It is not safe for
// concurrent use; drive it from a single tick loop.
type Interpolator struct {
	start  mgl32.Quat
	end    mgl32.Quat
	mode   InterpolationMode
	alpha  float32
	output mgl32.Quat

	rate      float32
	selection RotationSelection
	rotating  bool
	direction Direction

	logger Logger

	orientationListeners  listeners[OrientationChange]
	interpolatedListeners listeners[mgl32.Quat]
	rejectionListeners    listeners[EditRejection]
}

type Option func(*Interpolator)

func WithLogger(logger Logger) Option {
	return func(i *Interpolator) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithRotationRate sets the continuous rotation speed. Non-positive or
// non-finite rates are ignored.
func WithRotationRate(degreesPerSecond float32) Option {
	return func(i *Interpolator) {
		if finite(degreesPerSecond) && degreesPerSecond > 0 {
			i.rate = degreesPerSecond
		}
	}
}

func WithMode(mode InterpolationMode) Option {
	return func(i *Interpolator) {
		if mode == EulerLerp || mode == QuaternionSlerp {
			i.mode = mode
		}
	}
}

func WithParameter(alpha float32) Option {
	return func(i *Interpolator) {
		if !math.IsNaN(float64(alpha)) {
			i.alpha = mgl32.Clamp(alpha, 0, 1)
		}
	}
}

func NewInterpolator(opts ...Option) *Interpolator {
	i := &Interpolator{
		start:  mgl32.QuatIdent(),
		end:    mgl32.QuatIdent(),
		mode:   EulerLerp,
		rate:   DefaultRotationRate,
		logger: NewNopLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.output = i.compute()
	return i
}

// Quat returns the stored quaternion of target. It may be non-unit after a
// component edit.
func (i *Interpolator) Quat(target Target) mgl32.Quat {
	if target == End {
		return i.end
	}
	return i.start
}

// Euler returns the Euler view of target in degrees, each in [0,360).
func (i *Interpolator) Euler(target Target) mgl32.Vec3 {
	return orient.ToEuler(i.Quat(target))
}

func (i *Interpolator) Mode() InterpolationMode { return i.mode }
func (i *Interpolator) Parameter() float32      { return i.alpha }
func (i *Interpolator) Rate() float32           { return i.rate }

// Interpolated returns the output orientation for the current inputs.
func (i *Interpolator) Interpolated() mgl32.Quat {
	return i.output
}

// SetFromEuler replaces one Euler component of target. degrees may be any
// finite value; it reads back normalized. Returns false and leaves state
// unchanged for non-finite input or an unknown target/axis.
func (i *Interpolator) SetFromEuler(target Target, axis Axis, degrees float32) bool {
	if !target.valid() || !axis.valid() || !finite(degrees) {
		return false
	}
	e := i.Euler(target)
	e[axis] = degrees
	i.set(target, orient.FromEuler(e))
	return true
}

// SetFromQuatComponent overwrites one quaternion component of target. The
// result is stored as-is, without renormalization.
func (i *Interpolator) SetFromQuatComponent(target Target, component QuatComponent, value float32) bool {
	if !target.valid() || !finite(value) {
		return false
	}
	q := i.Quat(target)
	switch component {
	case QuatX:
		q.V[0] = value
	case QuatY:
		q.V[1] = value
	case QuatZ:
		q.V[2] = value
	case QuatW:
		q.W = value
	default:
		return false
	}
	i.set(target, q)
	return true
}

// SetQuat replaces the whole quaternion of target, as-is. Any non-finite
// component rejects the call.
func (i *Interpolator) SetQuat(target Target, q mgl32.Quat) bool {
	if !target.valid() || !finite(q.W) || !finite(q.V[0]) || !finite(q.V[1]) || !finite(q.V[2]) {
		return false
	}
	i.set(target, q)
	return true
}

func (i *Interpolator) SetMode(mode InterpolationMode) {
	if mode != EulerLerp && mode != QuaternionSlerp {
		i.logger.Debugf("ignoring unknown interpolation mode %d", mode)
		return
	}
	i.mode = mode
	i.evaluate()
}

// SetParameter clamps alpha to [0,1] and re-evaluates. NaN is ignored.
func (i *Interpolator) SetParameter(alpha float32) {
	if math.IsNaN(float64(alpha)) {
		return
	}
	i.alpha = mgl32.Clamp(alpha, 0, 1)
	i.evaluate()
}

// OnOrientationChanged registers fn for every start/end mutation and
// returns a function that removes it.
func (i *Interpolator) OnOrientationChanged(fn func(OrientationChange)) (remove func()) {
	return i.orientationListeners.add(fn)
}

// OnInterpolatedChanged registers fn for every change of the output.
func (i *Interpolator) OnInterpolatedChanged(fn func(mgl32.Quat)) (remove func()) {
	return i.interpolatedListeners.add(fn)
}

func (i *Interpolator) OnEditRejected(fn func(EditRejection)) (remove func()) {
	return i.rejectionListeners.add(fn)
}

// ClearListeners drops every registered callback.
func (i *Interpolator) ClearListeners() {
	i.orientationListeners.clear()
	i.interpolatedListeners.clear()
	i.rejectionListeners.clear()
}

func (i *Interpolator) set(target Target, q mgl32.Quat) {
	if target == End {
		i.end = q
	} else {
		i.start = q
	}
	i.orientationListeners.emit(OrientationChange{
		Target: target,
		Euler:  orient.ToEuler(q),
		Quat:   q,
	})
	i.evaluate()
}

func (i *Interpolator) evaluate() {
	out := i.compute()
	if out == i.output {
		return
	}
	i.output = out
	i.interpolatedListeners.emit(out)
}

func (i *Interpolator) compute() mgl32.Quat {
	if i.mode == QuaternionSlerp {
		return orient.Slerp(i.start, i.end, i.alpha)
	}
	return orient.LerpEuler(i.start, i.end, i.alpha)
}

func (i *Interpolator) reject(target Target, field RotationComponent, input, reason string) {
	i.logger.Debugf("discarding %s %s edit %q: %s", target, field, input, reason)
	i.rejectionListeners.emit(EditRejection{
		Target: target,
		Field:  field,
		Input:  input,
		Reason: reason,
	})
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

type listener[T any] struct {
	id int
	fn func(T)
}

type listeners[T any] struct {
	next    int
	entries []listener[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	id := l.next
	l.next++
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return func() {
		l.entries = slices.DeleteFunc(l.entries, func(e listener[T]) bool { return e.id == id })
	}
}

func (l *listeners[T]) emit(v T) {
	// Callbacks may add or remove listeners while we iterate.
	for _, e := range slices.Clone(l.entries) {
		e.fn(v)
	}
}

func (l *listeners[T]) clear() {
	l.entries = nil
}
