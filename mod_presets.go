package rotvis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// OrientationData is one stored orientation. Euler is informational; Quat
// (x, y, z, w) is what gets restored, unit or not.
type OrientationData struct {
	Euler mgl32.Vec3 `json:"euler"`
	Quat  [4]float32 `json:"quat"`
}

type PresetData struct {
	Start OrientationData `json:"start"`
	End   OrientationData `json:"end"`
	Mode  string          `json:"mode"`
	Alpha float32         `json:"alpha"`
}

func CapturePreset(interp *Interpolator) PresetData {
	capture := func(target Target) OrientationData {
		q := interp.Quat(target)
		return OrientationData{
			Euler: interp.Euler(target),
			Quat:  [4]float32{q.V[0], q.V[1], q.V[2], q.W},
		}
	}
	return PresetData{
		Start: capture(Start),
		End:   capture(End),
		Mode:  interp.Mode().String(),
		Alpha: interp.Parameter(),
	}
}

// ApplyPreset validates the whole preset before touching interp, so a bad
// preset leaves it unchanged.
func ApplyPreset(interp *Interpolator, preset PresetData) error {
	mode, ok := ParseInterpolationMode(preset.Mode)
	if !ok {
		return fmt.Errorf("preset mode %q: unknown mode", preset.Mode)
	}
	if !finite(preset.Alpha) {
		return fmt.Errorf("preset alpha %v: not finite", preset.Alpha)
	}
	start, end := preset.Start.quat(), preset.End.quat()
	for _, q := range []mgl32.Quat{start, end} {
		if !finite(q.W) || !finite(q.V[0]) || !finite(q.V[1]) || !finite(q.V[2]) {
			return fmt.Errorf("preset quaternion %v: not finite", q)
		}
	}

	interp.SetQuat(Start, start)
	interp.SetQuat(End, end)
	interp.SetMode(mode)
	interp.SetParameter(preset.Alpha)
	return nil
}

func (o OrientationData) quat() mgl32.Quat {
	return mgl32.Quat{W: o.Quat[3], V: mgl32.Vec3{o.Quat[0], o.Quat[1], o.Quat[2]}}
}

func SavePreset(interp *Interpolator, filename string) error {
	bytes, err := json.MarshalIndent(CapturePreset(interp), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, bytes, 0644)
}

func LoadPreset(interp *Interpolator, filename string) error {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var preset PresetData
	if err := json.Unmarshal(bytes, &preset); err != nil {
		return fmt.Errorf("parse preset %s: %w", filename, err)
	}

	return ApplyPreset(interp, preset)
}
