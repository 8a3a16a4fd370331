package rotvis

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64

	pending time.Duration
}

// Seconds returns Dt in seconds, the unit every rate in this package uses.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	// Start is the initial clock value; zero means time.Now().
	Start time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	start := mod.Start
	if start.IsZero() {
		start = time.Now()
	}
	cmd.AddResources(&Time{
		Time: start,
		Dt:   0,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	timeResource.Dt = timeResource.pending
	timeResource.Time = timeResource.Time.Add(timeResource.Dt)
	timeResource.Frame++
	timeResource.pending = 0
}
