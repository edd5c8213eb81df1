package loop

import (
	"fmt"
	"time"
)

// State is the driver's lifecycle state.
type State int

const (
	Running State = iota // Initial state
	Stopped              // Terminal; a stopped driver never runs again
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stats summarizes a run.
type Stats struct {
	Frames    int           // Updates performed
	Simulated time.Duration // Sum of every dt passed to Update
	Wall      time.Duration // Sum of every dt measured by the clock, before clamping
	Clamped   int           // Frames whose dt was cut to MaxDelta
}

// AverageFPS returns the measured frame rate, or 0 before the first tick.
// Every frame ends with one tick, so Wall covers Frames frames.
func (s Stats) AverageFPS() float64 {
	if s.Wall <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Wall.Seconds()
}
