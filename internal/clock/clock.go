// Package clock provides the frame clock that caps the loop's frame rate
// and reports delta time between frames.
package clock

import "time"

// Source provides the time operations the frame clock depends on.
// Tests substitute a fake to drive frames without sleeping.
type Source interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the default Source backed by the standard library.
var System Source = systemSource{}

type systemSource struct{}

func (systemSource) Now() time.Time        { return time.Now() }
func (systemSource) Sleep(d time.Duration) { time.Sleep(d) }

// FrameClock tracks the time of the previous tick.
type FrameClock struct {
	src  Source
	last time.Time
}

// NewWithSource creates a frame clock using src for time and sleeping.
func NewWithSource(src Source) *FrameClock {
	return &FrameClock{
		src:  src,
		last: src.Now(),
	}
}

// FrameTime returns the minimum duration of one frame at targetFPS.
// Zero means the rate is uncapped. The result is truncated to whole
// nanoseconds, so rates that do not divide one second get a budget up to
// 1ns short of 1/targetFPS.
func FrameTime(targetFPS int) time.Duration {
	if targetFPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(targetFPS)
}

// Tick blocks until at least 1/targetFPS has passed since the previous tick,
// then returns the time elapsed since the previous tick.
// A targetFPS <= 0 disables the cap.
func (c *FrameClock) Tick(targetFPS int) time.Duration {
	budget := FrameTime(targetFPS)

	// Keep sleeping until the budget is met; a sleep may wake early.
	for {
		elapsed := c.src.Now().Sub(c.last)
		if elapsed >= budget {
			break
		}
		c.src.Sleep(budget - elapsed)
	}

	now := c.src.Now()
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Reset restarts the measurement from the current time.
func (c *FrameClock) Reset() {
	c.last = c.src.Now()
}
