package rotvis

// Action is a held input the front-end can press and release.
type Action int

const (
	ActionRotateCCW Action = iota
	ActionRotateCW
	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionRotateCW:
		return "rotate-cw"
	}
	return "unknown"
}

func (a Action) direction() Direction {
	if a == ActionRotateCW {
		return CW
	}
	return CCW
}

// InputModule turns press/release of the rotate actions into BeginRotate
// and EndRotate calls at the start of each frame. Requires
// OrientationModule.
type InputModule struct{}

type Input struct {
	Pressed [actionCount]bool

	JustPressed  [actionCount]bool
	JustReleased [actionCount]bool

	// raw is written by the front-end between frames.
	raw [actionCount]bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	cmd.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func (in *Input) Press(a Action) {
	if a >= 0 && a < actionCount {
		in.raw[a] = true
	}
}

func (in *Input) Release(a Action) {
	if a >= 0 && a < actionCount {
		in.raw[a] = false
	}
}

// Toggle flips the held state, for front-ends without release events.
func (in *Input) Toggle(a Action) {
	if a >= 0 && a < actionCount {
		in.raw[a] = !in.raw[a]
	}
}

// Held reports the raw state, including changes not yet seen by a frame.
func (in *Input) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return in.raw[a]
}

func inputSystem(input *Input, interp *Interpolator) {
	for a := Action(0); a < actionCount; a++ {
		input.JustPressed[a] = false
		input.JustReleased[a] = false

		if input.raw[a] {
			if !input.Pressed[a] {
				input.JustPressed[a] = true
			}
			input.Pressed[a] = true
		} else {
			if input.Pressed[a] {
				input.JustReleased[a] = true
			}
			input.Pressed[a] = false
		}
	}

	// Releases first: a release and a press in the same frame leave the
	// pressed direction running.
	for a := Action(0); a < actionCount; a++ {
		if input.JustReleased[a] {
			interp.EndRotate(a.direction())
		}
	}
	for a := Action(0); a < actionCount; a++ {
		if input.JustPressed[a] {
			interp.BeginRotate(a.direction())
		}
	}
}
