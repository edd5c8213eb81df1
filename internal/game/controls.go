package game

import (
	"time"

	"github.com/tomz197/asteroids-solo/internal/config"
	"github.com/tomz197/asteroids-solo/internal/input"
	"github.com/tomz197/asteroids-solo/internal/world"
)

// heldKeys approximates key state from presses. Terminals send a key again
// on auto-repeat but never send its release. A fresh press keeps the key
// down for hold, long enough to bridge the auto-repeat delay. A press of a
// key that is still down is a repeat and extends it by the shorter repeat
// window.
type heldKeys struct {
	hold   time.Duration
	repeat time.Duration
	until  map[input.Key]time.Duration
}

func newHeldKeys(c config.ControlsConfig) heldKeys {
	repeat := c.Repeat
	if repeat <= 0 {
		repeat = c.Hold
	}
	return heldKeys{hold: c.Hold, repeat: repeat, until: make(map[input.Key]time.Duration)}
}

func (h heldKeys) press(k input.Key, now time.Duration) {
	window := h.hold
	if h.down(k, now) {
		window = h.repeat
	}
	h.until[k] = max(h.until[k], now+window)
}

// tap marks k down for the repeat window only. Fire uses it so one tap
// shoots once.
func (h heldKeys) tap(k input.Key, now time.Duration) {
	h.until[k] = max(h.until[k], now+h.repeat)
}

func (h heldKeys) down(k input.Key, now time.Duration) bool {
	until, ok := h.until[k]
	return ok && now <= until
}

func (h heldKeys) reset() {
	clear(h.until)
}

func (h heldKeys) controls(now time.Duration) world.Controls {
	return world.Controls{
		Left:   h.down(input.KeyLeft, now),
		Right:  h.down(input.KeyRight, now),
		Thrust: h.down(input.KeyUp, now),
		Fire:   h.down(input.KeySpace, now),
	}
}
