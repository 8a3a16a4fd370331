package rotvis

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PreviewModule keeps the preview model transform and the start,
// interpolated and end axis indicators in step with the interpolator.
// Requires OrientationModule.
type PreviewModule struct {
	// Spacing is the distance of the start/end indicators from the center.
	Spacing    float32
	AxisLength float32
}

type Preview struct {
	Model        Transform
	Start        AxesGizmo
	Interpolated AxesGizmo
	End          AxesGizmo

	// Syncs counts how many times the preview was refreshed.
	Syncs int
}

func (mod PreviewModule) Install(app *App, cmd *Commands) {
	spacing := mod.Spacing
	if spacing == 0 {
		spacing = 2
	}
	length := mod.AxisLength
	if length == 0 {
		length = 1
	}

	interp := MustResource[Interpolator](app, "PreviewModule")
	preview := &Preview{
		Model:        *NewTransform(),
		Start:        NewAxesGizmo(mgl32.Vec3{-spacing, 0, 0}, length),
		Interpolated: NewAxesGizmo(mgl32.Vec3{0, 0, 0}, length),
		End:          NewAxesGizmo(mgl32.Vec3{spacing, 0, 0}, length),
	}
	preview.sync(interp)

	// An edit to end while alpha is 0 leaves the output unchanged, so both
	// events refresh the indicators.
	interp.OnOrientationChanged(func(OrientationChange) { preview.sync(interp) })
	interp.OnInterpolatedChanged(func(mgl32.Quat) { preview.sync(interp) })

	cmd.AddResources(preview)
}

func (p *Preview) sync(interp *Interpolator) {
	out := interp.Interpolated()
	p.Model.SetRotation(out)
	p.Start.SetRotation(interp.Quat(Start))
	p.Interpolated.SetRotation(out)
	p.End.SetRotation(interp.Quat(End))
	p.Syncs++
}
