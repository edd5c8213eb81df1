// Package world simulates the asteroid field: ship, asteroids, bullets and
// particles in a wrapping 2D space.
//
// Entities are plain values in per-kind slices; each kind has its own step
// function and collisions are resolved once per Step.
package world

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tomz197/asteroids-solo/internal/config"
	"github.com/tomz197/asteroids-solo/internal/physics"
)

// Controls is the player's intent for one step.
type Controls struct {
	Left, Right bool
	Thrust      bool
	Fire        bool
}

// Report describes what happened during a Step.
type Report struct {
	Destroyed []Size // asteroids shot down, in hit order
	ShipHit   bool
	Fired     int
}

// World holds every simulated entity.
type World struct {
	Bounds    physics.Bounds
	Ship      *Ship // nil while the player has no ship
	Asteroids []Asteroid
	Bullets   []Bullet
	Particles []Particle
	Elapsed   time.Duration // total simulated time

	cfg  config.Config
	rng  *rand.Rand
	grid *physics.SpatialGrid
}

// New creates an empty world sized by the display config.
func New(cfg config.Config, rng *rand.Rand) *World {
	bounds := physics.Bounds{Width: cfg.Display.Width, Height: cfg.Display.Height}
	return &World{
		Bounds: bounds,
		cfg:    cfg,
		rng:    rng,
		grid:   physics.NewSpatialGrid(bounds, 2*Large.Radius()),
	}
}

// NewRand returns the generator used for a seed. The same seed always
// produces the same game.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Clear removes every entity.
func (w *World) Clear() {
	w.Ship = nil
	w.Asteroids = w.Asteroids[:0]
	w.Bullets = w.Bullets[:0]
	w.Particles = w.Particles[:0]
}

// ClearEffects removes bullets and particles, keeping asteroids.
func (w *World) ClearEffects() {
	w.Bullets = w.Bullets[:0]
	w.Particles = w.Particles[:0]
}

// Populate fills the field up to the configured population.
func (w *World) Populate() {
	w.replenish()
}

// SpawnShip places a fresh ship at the center with shield seconds of
// invulnerability.
func (w *World) SpawnShip(shield float64) *Ship {
	x, y := w.Bounds.Center()
	w.Ship = NewShip(x, y)
	w.Ship.Shield = shield
	return w.Ship
}

// Step advances the simulation by dt.
func (w *World) Step(dt time.Duration, c Controls) Report {
	w.Elapsed += dt
	s := dt.Seconds()
	var r Report

	if w.Ship != nil {
		if stepShip(w.Ship, c, w.cfg.Ship, w.Bounds, s) {
			w.fire()
			r.Fired++
		}
		if c.Thrust {
			w.exhaust()
		}
	}

	for i := range w.Asteroids {
		stepAsteroid(&w.Asteroids[i], w.Bounds, s)
	}

	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		if stepBullet(&b, w.Bounds, s) {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept

	parts := w.Particles[:0]
	for _, p := range w.Particles {
		if stepParticle(&p, w.Bounds, s) {
			parts = append(parts, p)
		}
	}
	w.Particles = parts

	w.collide(&r)
	w.replenish()
	return r
}

// AsteroidWeight returns the weighted asteroid count (large 4, medium 2,
// small 1).
func (w *World) AsteroidWeight() int {
	total := 0
	for _, a := range w.Asteroids {
		total += a.Size.Weight()
	}
	return total
}

// Clone returns a deep copy sharing only the random source.
func (w *World) Clone() *World {
	c := *w
	if w.Ship != nil {
		ship := *w.Ship
		c.Ship = &ship
	}
	c.Asteroids = slices.Clone(w.Asteroids)
	for i := range c.Asteroids {
		c.Asteroids[i].Shape = slices.Clone(c.Asteroids[i].Shape)
	}
	c.Bullets = slices.Clone(w.Bullets)
	c.Particles = slices.Clone(w.Particles)
	return &c
}
