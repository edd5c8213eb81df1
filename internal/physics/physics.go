// Package physics provides wrap-around geometry and a spatial grid for
// a toroidal 2D world.
package physics

import "math"

// Wrap maps v into [0, size). A non-positive size leaves v unchanged.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// WrapDelta returns the shortest signed offset from a to b on a ring of
// the given size.
func WrapDelta(a, b, size float64) float64 {
	d := b - a
	if size <= 0 {
		return d
	}
	d = math.Mod(d, size)
	switch {
	case d > size/2:
		d -= size
	case d < -size/2:
		d += size
	}
	return d
}

// Bounds is the size of a wrapping world.
type Bounds struct {
	Width, Height float64
}

// Wrap moves a point back inside the bounds.
func (b Bounds) Wrap(x, y float64) (float64, float64) {
	return Wrap(x, b.Width), Wrap(y, b.Height)
}

// Delta returns the shortest offset from (x1, y1) to (x2, y2) across edges.
func (b Bounds) Delta(x1, y1, x2, y2 float64) (dx, dy float64) {
	return WrapDelta(x1, x2, b.Width), WrapDelta(y1, y2, b.Height)
}

// DistanceSquared returns the squared shortest distance across edges.
func (b Bounds) DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx, dy := b.Delta(x1, y1, x2, y2)
	return dx*dx + dy*dy
}

// Center returns the middle of the world.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}
