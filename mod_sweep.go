package rotvis

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// Easing looks up an easing function by config name.
func Easing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// SweepModule animates the interpolation parameter from 0 to 1, and back
// again when Loop is set. Requires OrientationModule and TimeModule.
type SweepModule struct {
	Duration time.Duration
	Easing   string
	Loop     bool
}

type Sweep struct {
	duration float32
	easing   ease.TweenFunc
	loop     bool

	tween   *gween.Tween
	elapsed float32
	forward bool
	logger  Logger
}

func (mod SweepModule) Install(app *App, cmd *Commands) {
	duration := mod.Duration
	if duration <= 0 {
		duration = 2 * time.Second
	}
	fn, ok := Easing(mod.Easing)
	if !ok {
		if mod.Easing != "" {
			app.Logger().Warnf("unknown sweep easing %q, using linear", mod.Easing)
		}
		fn = ease.Linear
	}

	cmd.AddResources(&Sweep{
		duration: float32(duration.Seconds()),
		easing:   fn,
		loop:     mod.Loop,
		logger:   app.Logger(),
	})
	cmd.UseSystem(System(sweepSystem).InStage(PreUpdate))
}

// Start begins a sweep from 0 towards 1.
func (s *Sweep) Start() {
	s.forward = true
	s.elapsed = 0
	s.tween = s.leg()
	s.logger.Debugf("sweep started over %.2fs", s.duration)
}

func (s *Sweep) Stop() {
	s.tween = nil
}

func (s *Sweep) Active() bool {
	return s.tween != nil
}

// advance steps the tween and returns the parameter to apply.
func (s *Sweep) advance(dt float32) (float32, bool) {
	if s.tween == nil {
		return 0, false
	}
	s.elapsed += dt
	value, finished := s.tween.Update(dt)
	for finished && s.loop {
		// Time past the end of a leg carries into the next one.
		over := s.elapsed - s.duration
		s.forward = !s.forward
		s.tween = s.leg()
		s.elapsed = over
		value, finished = s.tween.Update(over)
	}
	if finished {
		s.tween = nil
	}
	return value, true
}

func (s *Sweep) leg() *gween.Tween {
	if s.forward {
		return gween.New(0, 1, s.duration, s.easing)
	}
	return gween.New(1, 0, s.duration, s.easing)
}

func sweepSystem(t *Time, sweep *Sweep, interp *Interpolator) {
	if alpha, ok := sweep.advance(t.Seconds()); ok {
		interp.SetParameter(alpha)
	}
}
