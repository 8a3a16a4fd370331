package rotvis

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetSerialization(t *testing.T) {
	interp := NewInterpolator(WithMode(QuaternionSlerp), WithParameter(0.3))
	interp.SetFromEuler(Start, AxisY, 30)
	interp.SetFromEuler(End, AxisX, 80)
	interp.SetFromQuatComponent(End, QuatW, 2)

	testFile := filepath.Join(t.TempDir(), "preset.json")
	require.NoError(t, SavePreset(interp, testFile))

	jsonContent, err := os.ReadFile(testFile)
	require.NoError(t, err)
	t.Logf("Saved JSON:\n%s", string(jsonContent))
	assert.Contains(t, string(jsonContent), `"mode": "quat"`)

	loaded := NewInterpolator()
	require.NoError(t, LoadPreset(loaded, testFile))

	assert.Equal(t, interp.Quat(Start), loaded.Quat(Start))
	assert.Equal(t, interp.Quat(End), loaded.Quat(End), "non-unit quaternions round trip as-is")
	assert.Equal(t, QuaternionSlerp, loaded.Mode())
	assert.Equal(t, float32(0.3), loaded.Parameter())
	assert.Equal(t, interp.Interpolated(), loaded.Interpolated())
}

func TestApplyPreset_Invalid(t *testing.T) {
	interp := NewInterpolator()
	interp.SetFromEuler(End, AxisZ, 10)
	before := CapturePreset(interp)

	bad := before
	bad.Mode = "cubic"
	assert.Error(t, ApplyPreset(interp, bad))

	bad = before
	bad.End.Quat[1] = float32(math.Inf(1))
	assert.Error(t, ApplyPreset(interp, bad))

	assert.Equal(t, before, CapturePreset(interp))
}

func TestLoadPreset_Errors(t *testing.T) {
	interp := NewInterpolator()
	assert.Error(t, LoadPreset(interp, filepath.Join(t.TempDir(), "missing.json")))

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	err := LoadPreset(interp, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse preset")
}
