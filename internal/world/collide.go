package world

import "math"

// Explosion tuning: particles per size class, speed, lifetime.
const (
	burstPerSize  = 4
	burstSpeed    = 20.0
	burstLife     = 0.5
	shipBurst     = 20
	shipBurstSpd  = 25.0
	shipBurstLife = 1.0
)

// collide resolves every collision for the current positions.
func (w *World) collide(r *Report) {
	w.grid.Reset()
	for i := range w.Asteroids {
		w.grid.Insert(w.Asteroids[i].X, w.Asteroids[i].Y, i)
	}

	w.bulletHits(r)
	w.bounceAsteroids()
	w.shipHit(r)
	w.breakUp()

	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Life > 0 {
			live = append(live, b)
		}
	}
	w.Bullets = live
}

// bulletHits lets each bullet destroy at most one unprotected asteroid.
func (w *World) bulletHits(r *Report) {
	for bi := range w.Bullets {
		b := &w.Bullets[bi]
		w.grid.Near(b.X, b.Y, func(ai int) bool {
			a := &w.Asteroids[ai]
			if a.destroyed || a.Protected() {
				return true
			}
			reach := a.Radius + BulletRadius
			if w.Bounds.DistanceSquared(b.X, b.Y, a.X, a.Y) > reach*reach {
				return true
			}
			b.Life = 0
			a.destroyed = true
			r.Destroyed = append(r.Destroyed, a.Size)
			return false
		})
	}
}

// bounceAsteroids resolves overlapping asteroids with an elastic impulse,
// using area (r²) as mass, and pushes them apart.
func (w *World) bounceAsteroids() {
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		if a.destroyed {
			continue
		}
		w.grid.Near(a.X, a.Y, func(j int) bool {
			if j <= i {
				return true
			}
			b := &w.Asteroids[j]
			if b.destroyed {
				return true
			}
			dx, dy := w.Bounds.Delta(a.X, a.Y, b.X, b.Y)
			distSq := dx*dx + dy*dy
			reach := a.Radius + b.Radius
			if distSq == 0 || distSq >= reach*reach {
				return true
			}
			w.bounce(a, b, dx, dy, distSq)
			return true
		})
	}
}

func (w *World) bounce(a, b *Asteroid, dx, dy, distSq float64) {
	dist := math.Sqrt(distSq)
	nx, ny := dx/dist, dy/dist

	// Relative velocity along the normal; negative means already separating.
	dvn := (a.VX-b.VX)*nx + (a.VY-b.VY)*ny
	ma, mb := a.Radius*a.Radius, b.Radius*b.Radius
	total := ma + mb

	if dvn > 0 {
		impulse := 2 * dvn / total
		a.VX -= impulse * mb * nx
		a.VY -= impulse * mb * ny
		b.VX += impulse * ma * nx
		b.VY += impulse * ma * ny
	}

	overlap := a.Radius + b.Radius - dist
	a.X, a.Y = w.Bounds.Wrap(a.X-nx*overlap*mb/total, a.Y-ny*overlap*mb/total)
	b.X, b.Y = w.Bounds.Wrap(b.X+nx*overlap*ma/total, b.Y+ny*overlap*ma/total)
}

// shipHit destroys the ship when it touches an asteroid and is not shielded.
func (w *World) shipHit(r *Report) {
	s := w.Ship
	if s == nil || s.Shield > 0 {
		return
	}
	radius := w.cfg.Ship.Size
	hit := false
	w.grid.Near(s.X, s.Y, func(ai int) bool {
		a := &w.Asteroids[ai]
		if a.destroyed || a.Protected() {
			return true
		}
		reach := radius + a.Radius
		if w.Bounds.DistanceSquared(s.X, s.Y, a.X, a.Y) < reach*reach {
			hit = true
			return false
		}
		return true
	})
	if !hit {
		return
	}
	w.burst(s.X, s.Y, shipBurst, shipBurstSpd, shipBurstLife)
	w.Ship = nil
	r.ShipHit = true
}

// breakUp replaces destroyed asteroids with their fragments.
func (w *World) breakUp() {
	var fragments []Asteroid
	kept := w.Asteroids[:0]
	for _, a := range w.Asteroids {
		if !a.destroyed {
			kept = append(kept, a)
			continue
		}
		w.burst(a.X, a.Y, int(a.Size)*burstPerSize, burstSpeed, burstLife)
		fragments = append(fragments, split(w.rng, a)...)
	}
	w.Asteroids = append(kept, fragments...)
}
