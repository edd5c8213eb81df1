// Package loop provides the game loop driver: poll input, update the
// simulation by the elapsed time, render, then wait for the next frame.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-solo/internal/clock"
	"github.com/tomz197/asteroids-solo/internal/draw"
	"github.com/tomz197/asteroids-solo/internal/input"
)

// DefaultFPS is the frame cap set by NewOptions.
const DefaultFPS = 60

// statsEvery is how many frames pass between debug stat lines.
const statsEvery = 600

// ErrStopped is returned when Run is called on a driver that already stopped.
var ErrStopped = errors.New("loop: driver stopped")

// Game is the simulation driven by the loop.
type Game interface {
	// HandleEvent receives every polled event that is not a quit-request.
	HandleEvent(ev input.Event)
	// Update advances the simulation by dt.
	Update(dt time.Duration) error
	// Render draws the current state. It must not change it.
	Render(s *draw.Surface) error
}

// Display is where frames are drawn. The driver owns it for the whole run
// and closes it on every exit path.
type Display interface {
	BeginFrame() (*draw.Surface, error)
	Present() error
	Close() error
}

// Options tunes a Driver.
type Options struct {
	FPS      int           // Frame cap, <= 0 is uncapped
	MaxDelta time.Duration // Upper bound for dt passed to Update, 0 = none
	Logger   *log.Logger   // nil disables logging
	Clock    clock.Source  // nil uses the system clock
}

// NewOptions returns the options used by the game binary.
func NewOptions() Options {
	return Options{FPS: DefaultFPS}
}

// Driver runs a Game against an event source and a display.
type Driver struct {
	game    Game
	events  input.Source
	display Display
	opts    Options

	state State
	stats Stats
}

// New creates a driver in the Running state.
func New(game Game, events input.Source, display Display, opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	return &Driver{
		game:    game,
		events:  events,
		display: display,
		opts:    opts,
		state:   Running,
	}
}

// State returns the driver's current state.
func (d *Driver) State() State {
	return d.state
}

// Stats returns the statistics gathered so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Run loops until a quit-request arrives, ctx is cancelled or a frame
// fails. The display is closed before Run returns, including on panic.
// A quit-request returns nil.
func (d *Driver) Run(ctx context.Context) (err error) {
	if d.state == Stopped {
		return ErrStopped
	}

	defer func() {
		d.state = Stopped
		if cerr := d.display.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close display: %w", cerr)
		}
		d.debug("loop stopped", "frames", d.stats.Frames, "simulated", d.stats.Simulated, "fps", d.stats.AverageFPS())
	}()

	fc := clock.NewWithSource(d.opts.Clock)
	d.debug("loop started", "fps", d.opts.FPS, "max_delta", d.opts.MaxDelta)

	var dt time.Duration
	for {
		d.poll(ctx)
		if d.state == Stopped {
			return nil
		}

		if d.opts.MaxDelta > 0 && dt > d.opts.MaxDelta {
			d.debug("delta clamped", "dt", dt, "max", d.opts.MaxDelta)
			dt = d.opts.MaxDelta
			d.stats.Clamped++
		}
		if err := d.game.Update(dt); err != nil {
			return fmt.Errorf("update frame %d: %w", d.stats.Frames, err)
		}
		d.stats.Frames++
		d.stats.Simulated += dt

		if err := d.render(); err != nil {
			return fmt.Errorf("render frame %d: %w", d.stats.Frames, err)
		}

		dt = fc.Tick(d.opts.FPS)
		d.stats.Wall += dt
		if d.stats.Frames%statsEvery == 0 {
			d.debug("frame stats", "frames", d.stats.Frames, "fps", d.stats.AverageFPS())
		}
	}
}

// poll drains every pending event. Quit-requests and a cancelled context
// stop the driver; other events go to the game until it stops.
func (d *Driver) poll(ctx context.Context) {
	for ev := range d.events.Poll() {
		if ev.IsQuitRequest() {
			if d.state == Running {
				d.debug("quit requested", "event", ev)
			}
			d.state = Stopped
			continue
		}
		if d.state == Running {
			d.game.HandleEvent(ev)
		}
	}
	if d.state == Running && ctx.Err() != nil {
		d.debug("context done", "err", ctx.Err())
		d.state = Stopped
	}
}

func (d *Driver) render() error {
	surface, err := d.display.BeginFrame()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := d.game.Render(surface); err != nil {
		return err
	}
	if err := d.display.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (d *Driver) debug(msg string, keyvals ...any) {
	if d.opts.Logger != nil {
		d.opts.Logger.Debug(msg, keyvals...)
	}
}
