package rotvis

// OrientationModule installs the *Interpolator resource and advances its
// continuous rotation once per frame. Requires TimeModule.
type OrientationModule struct {
	// Rate in degrees per second; zero means DefaultRotationRate.
	Rate  float32
	Mode  InterpolationMode
	Alpha float32
}

func (mod OrientationModule) Install(app *App, cmd *Commands) {
	opts := []Option{
		WithLogger(app.Logger()),
		WithMode(mod.Mode),
		WithParameter(mod.Alpha),
	}
	if mod.Rate != 0 {
		opts = append(opts, WithRotationRate(mod.Rate))
	}

	interp := NewInterpolator(opts...)
	cmd.AddResources(interp)
	cmd.UseSystem(System(orientationSystem).InStage(Update))

	app.Logger().Infof("orientation module installed: mode=%s alpha=%.2f rate=%.1f",
		interp.Mode(), interp.Parameter(), interp.Rate())
}

func orientationSystem(t *Time, interp *Interpolator) {
	interp.Tick(t.Seconds())
}
