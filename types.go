package rotvis

// Target selects which of the two stored orientations an operation edits.
type Target int

const (
	Start Target = iota
	End
)

func (t Target) String() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "unknown"
}

func (t Target) valid() bool { return t == Start || t == End }

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// Space is the frame a continuous rotation is applied in.
type Space int

const (
	World Space = iota
	Local
)

func (s Space) String() string {
	switch s {
	case World:
		return "world"
	case Local:
		return "local"
	}
	return "unknown"
}

type Direction int

const (
	CCW Direction = iota
	CW
)

func (d Direction) String() string {
	switch d {
	case CCW:
		return "ccw"
	case CW:
		return "cw"
	}
	return "unknown"
}

// sign is the angle multiplier; clockwise turns are negative.
func (d Direction) sign() float32 {
	if d == CW {
		return -1
	}
	return 1
}

type InterpolationMode int

const (
	EulerLerp InterpolationMode = iota
	QuaternionSlerp
)

func (m InterpolationMode) String() string {
	switch m {
	case EulerLerp:
		return "euler"
	case QuaternionSlerp:
		return "quat"
	}
	return "unknown"
}

// ParseInterpolationMode accepts the names used in config files.
func ParseInterpolationMode(s string) (InterpolationMode, bool) {
	switch s {
	case "euler", "lerp", "Euler":
		return EulerLerp, true
	case "quat", "slerp", "quaternion", "Quat":
		return QuaternionSlerp, true
	}
	return EulerLerp, false
}

type QuatComponent int

const (
	QuatX QuatComponent = iota
	QuatY
	QuatZ
	QuatW
)

func (c QuatComponent) String() string {
	switch c {
	case QuatX:
		return "x"
	case QuatY:
		return "y"
	case QuatZ:
		return "z"
	case QuatW:
		return "w"
	}
	return "unknown"
}

// RotationComponent names one of the seven editable fields of a target.
type RotationComponent int

const (
	EulerXField RotationComponent = iota
	EulerYField
	EulerZField
	QuatXField
	QuatYField
	QuatZField
	QuatWField
)

// RotationComponents lists the fields in display order.
var RotationComponents = []RotationComponent{
	EulerXField, EulerYField, EulerZField,
	QuatXField, QuatYField, QuatZField, QuatWField,
}

func (c RotationComponent) String() string {
	switch c {
	case EulerXField:
		return "euler.x"
	case EulerYField:
		return "euler.y"
	case EulerZField:
		return "euler.z"
	case QuatXField:
		return "quat.x"
	case QuatYField:
		return "quat.y"
	case QuatZField:
		return "quat.z"
	case QuatWField:
		return "quat.w"
	}
	return "unknown"
}

// IsEuler reports whether the field edits an Euler angle.
func (c RotationComponent) IsEuler() bool {
	return c >= EulerXField && c <= EulerZField
}

func (c RotationComponent) axis() Axis {
	return Axis(c - EulerXField)
}

func (c RotationComponent) quatComponent() QuatComponent {
	return QuatComponent(c - QuatXField)
}

func (c RotationComponent) valid() bool {
	return c >= EulerXField && c <= QuatWField
}
