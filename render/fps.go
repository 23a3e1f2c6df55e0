package render

import (
	"time"
)

// FPSCounter counts frames over a sliding one-second window.
type FPSCounter struct {
	Window time.Duration

	stamps []time.Time
}

func NewFPSCounter() *FPSCounter {
	return &FPSCounter{Window: time.Second}
}

// Tick records a frame presented at now.
func (c *FPSCounter) Tick(now time.Time) {
	c.stamps = append(c.stamps, now)
	cutoff := now.Add(-c.Window)
	drop := 0
	for drop < len(c.stamps) && !c.stamps[drop].After(cutoff) {
		drop++
	}
	c.stamps = append(c.stamps[:0], c.stamps[drop:]...)
}

// FPS returns the frame rate over the window ending at the last tick.
func (c *FPSCounter) FPS() float64 {
	if len(c.stamps) == 0 || c.Window <= 0 {
		return 0
	}
	return float64(len(c.stamps)) / c.Window.Seconds()
}
