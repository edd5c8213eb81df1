package world

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/asteroids-solo/internal/physics"
)

// Size is an asteroid size class.
type Size int

const (
	Small  Size = 1
	Medium Size = 2
	Large  Size = 3
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "unknown"
}

// Radius returns the collision radius.
func (s Size) Radius() float64 {
	switch s {
	case Small:
		return 1.5
	case Medium:
		return 3
	case Large:
		return 5
	}
	return 0
}

// Speed returns the drift speed of a fresh asteroid.
func (s Size) Speed() float64 {
	switch s {
	case Small:
		return 15
	case Medium:
		return 10
	case Large:
		return 6
	}
	return 0
}

// Weight returns how much the asteroid counts toward the population.
// A large asteroid splits into two medium, each into two small, so the
// weight of a field is preserved until the smallest pieces are shot.
func (s Size) Weight() int {
	switch s {
	case Small:
		return 1
	case Medium:
		return 2
	case Large:
		return 4
	}
	return 0
}

// Asteroid is a drifting, spinning rock.
type Asteroid struct {
	X, Y       float64
	VX, VY     float64
	Angle      float64
	Spin       float64 // rad/s
	Size       Size
	Radius     float64
	Shape      []float64 // vertex distances from the center, evenly spaced by angle
	Protection float64   // seconds before it can be hit

	destroyed bool
}

// NewAsteroid creates an asteroid of size moving along heading (radians).
func NewAsteroid(rng *rand.Rand, x, y float64, size Size, heading float64) Asteroid {
	radius := size.Radius()
	shape := make([]float64, 8+rng.IntN(5))
	for i := range shape {
		shape[i] = radius * (0.7 + rng.Float64()*0.6)
	}
	return Asteroid{
		X:      x,
		Y:      y,
		VX:     math.Cos(heading) * size.Speed(),
		VY:     math.Sin(heading) * size.Speed(),
		Angle:  rng.Float64() * 2 * math.Pi,
		Spin:   (rng.Float64() - 0.5) * 2,
		Size:   size,
		Radius: radius,
		Shape:  shape,
	}
}

// Protected reports whether the asteroid cannot be hit yet.
func (a *Asteroid) Protected() bool {
	return a.Protection > 0
}

// Vertex returns the i-th outline point.
func (a *Asteroid) Vertex(i int) (float64, float64) {
	angle := a.Angle + float64(i)*2*math.Pi/float64(len(a.Shape))
	return a.X + math.Cos(angle)*a.Shape[i], a.Y + math.Sin(angle)*a.Shape[i]
}

func stepAsteroid(a *Asteroid, bounds physics.Bounds, dt float64) {
	if a.Protection > 0 {
		a.Protection = max(0, a.Protection-dt)
	}
	a.Angle += a.Spin * dt
	a.X, a.Y = bounds.Wrap(a.X+a.VX*dt, a.Y+a.VY*dt)
}

// split returns the fragments of a destroyed asteroid: two of the next
// smaller size, or none for a small one.
func split(rng *rand.Rand, a Asteroid) []Asteroid {
	if a.Size <= Small {
		return nil
	}
	return []Asteroid{
		NewAsteroid(rng, a.X, a.Y, a.Size-1, rng.Float64()*2*math.Pi),
		NewAsteroid(rng, a.X, a.Y, a.Size-1, rng.Float64()*2*math.Pi),
	}
}
