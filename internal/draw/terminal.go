package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SizeFunc reports the current terminal size in cells.
type SizeFunc func() (cols, rows int, err error)

// Display owns the terminal for the lifetime of a run. It hands out the
// frame surface and writes it out on Present.
type Display struct {
	out     *ChunkWriter
	size    SizeFunc
	surface *Surface
	restore func() error
	closed  bool
}

// NewDisplay prepares w for drawing: hides the cursor and clears the screen.
// size is queried every frame so resizes take effect immediately.
func NewDisplay(w io.Writer, size SizeFunc, logicalW, logicalH float64) (*Display, error) {
	d := &Display{
		out:     NewChunkWriter(w),
		size:    size,
		surface: NewSurface(logicalW, logicalH),
	}
	d.out.WriteString(seqHideCursor + seqClear)
	if err := d.out.Flush(); err != nil {
		return nil, fmt.Errorf("prepare display: %w", err)
	}
	return d, nil
}

// OpenTerminal switches in to raw mode and prepares out for drawing.
// Close restores the previous terminal state.
func OpenTerminal(in, out *os.File, logicalW, logicalH float64) (*Display, error) {
	fd := int(in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	restore := func() error { return term.Restore(fd, old) }

	size := func() (int, int, error) { return term.GetSize(int(out.Fd())) }
	d, err := NewDisplay(out, size, logicalW, logicalH)
	if err != nil {
		_ = restore()
		return nil, err
	}
	d.restore = restore
	return d, nil
}

// BeginFrame resizes and clears the surface for a new frame.
func (d *Display) BeginFrame() (*Surface, error) {
	cols, rows, err := d.size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	d.surface.Canvas.Resize(cols, rows)
	d.surface.reset()
	return d.surface, nil
}

// Present writes the current surface to the terminal.
func (d *Display) Present() error {
	d.out.WriteString(seqClear)
	d.surface.render(d.out)
	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Close clears the screen, shows the cursor and restores the terminal.
// Calling Close more than once is a no-op.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	d.out.WriteString(seqClear + seqShowCursor)
	flushErr := d.out.Flush()
	if d.restore != nil {
		if err := d.restore(); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("reset screen: %w", flushErr)
	}
	return nil
}
