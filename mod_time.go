package ballpit

import (
	"time"
)

// Time is the frame clock. Dt is the time elapsed since the previous frame.
// With a positive Fixed step, Dt is always Fixed and the wall clock is ignored.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Fixed time.Duration
	Frame uint64

	now func() time.Time
}

func (t *Time) Seconds() float64 {
	return t.Dt.Seconds()
}

type TimeModule struct {
	Fixed time.Duration
	// Now overrides the wall clock, mostly for tests.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	cmd.AddResources(&Time{
		Time:  now(),
		Dt:    0,
		Fixed: mod.Fixed,
		now:   now,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	now := timeResource.now()

	if timeResource.Fixed > 0 {
		timeResource.Dt = timeResource.Fixed
	} else {
		timeResource.Dt = now.Sub(timeResource.Time)
	}
	timeResource.Time = now
	timeResource.Frame++
}
