package world

import "math"

// Spawning keeps new asteroids away from the ship.
const (
	safeRadius     = 20.0
	placeAttempts  = 10
	edgeHeadingVar = math.Pi / 2
)

// replenish spawns large asteroids while the field is at least one large
// asteroid short of the configured population.
func (w *World) replenish() {
	deficit := w.cfg.Asteroids.Population - w.AsteroidWeight()
	for deficit >= Large.Weight() {
		w.spawn(Large)
		deficit -= Large.Weight()
	}
}

// spawn places an asteroid at a random spot clear of the ship, aimed
// roughly at the center, with spawn protection.
func (w *World) spawn(size Size) {
	x, y := w.placement()
	cx, cy := w.Bounds.Center()
	heading := math.Atan2(cy-y, cx-x) + (w.rng.Float64()-0.5)*edgeHeadingVar

	a := NewAsteroid(w.rng, x, y, size, heading)
	a.Protection = w.cfg.Asteroids.SpawnProtection
	w.Asteroids = append(w.Asteroids, a)
}

// placement picks a position outside the ship's safe radius. After
// placeAttempts misses it settles for the farthest candidate seen.
func (w *World) placement() (float64, float64) {
	var bestX, bestY, bestDist float64
	for range placeAttempts {
		x := w.rng.Float64() * w.Bounds.Width
		y := w.rng.Float64() * w.Bounds.Height
		if w.Ship == nil {
			return x, y
		}
		d := w.Bounds.DistanceSquared(x, y, w.Ship.X, w.Ship.Y)
		if d >= safeRadius*safeRadius {
			return x, y
		}
		if d > bestDist {
			bestX, bestY, bestDist = x, y, d
		}
	}
	return bestX, bestY
}
