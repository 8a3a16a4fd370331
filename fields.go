package rotvis

import (
	"strconv"
	"strings"
)

// EditField applies text typed into one of the seven fields of target.
// Text that does not parse as a finite number is discarded: the orientation
// is left exactly as it was and false is returned.
func (i *Interpolator) EditField(target Target, field RotationComponent, text string) bool {
	if !target.valid() || !field.valid() {
		i.reject(target, field, text, "unknown field")
		return false
	}

	trimmed := strings.TrimSpace(text)
	value, err := strconv.ParseFloat(trimmed, 32)
	if err != nil || !plainDecimal(trimmed) {
		i.reject(target, field, text, "not a number")
		return false
	}
	v := float32(value)
	if !finite(v) {
		i.reject(target, field, text, "not finite")
		return false
	}

	if field.IsEuler() {
		return i.SetFromEuler(target, field.axis(), v)
	}
	return i.SetFromQuatComponent(target, field.quatComponent(), v)
}

// FieldValue returns the current value shown in field of target.
func (i *Interpolator) FieldValue(target Target, field RotationComponent) float32 {
	if field.IsEuler() {
		return i.Euler(target)[field.axis()]
	}
	q := i.Quat(target)
	switch field.quatComponent() {
	case QuatX:
		return q.V[0]
	case QuatY:
		return q.V[1]
	case QuatZ:
		return q.V[2]
	default:
		return q.W
	}
}

// FormatField renders a field value the way the fields display it.
func FormatField(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// plainDecimal rejects the Go-only literal forms ParseFloat also accepts:
// hex mantissas and underscore digit separators.
func plainDecimal(text string) bool {
	if strings.ContainsRune(text, '_') {
		return false
	}
	digits := strings.TrimLeft(text, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}
