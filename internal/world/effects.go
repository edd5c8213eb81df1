package world

import (
	"math"

	"github.com/tomz197/asteroids-solo/internal/physics"
)

// BulletRadius is the collision radius of a bullet.
const BulletRadius = 0.5

// Bullet is a projectile fired by the ship.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds left
}

// stepBullet moves b and reports whether it is still alive.
func stepBullet(b *Bullet, bounds physics.Bounds, dt float64) bool {
	b.Life -= dt
	if b.Life <= 0 {
		return false
	}
	b.X, b.Y = bounds.Wrap(b.X+b.VX*dt, b.Y+b.VY*dt)
	return true
}

// Particle is a short-lived visual speck. It never collides.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // seconds left
	MaxLife float64
	Drag    float64 // velocity kept per 1/60 s
}

// Fade returns the remaining fraction of the particle's life.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// stepParticle moves p and reports whether it is still alive.
func stepParticle(p *Particle, bounds physics.Bounds, dt float64) bool {
	p.Life -= dt
	if p.Life <= 0 {
		return false
	}
	keep := math.Pow(p.Drag, dt*60)
	p.VX *= keep
	p.VY *= keep
	p.X, p.Y = bounds.Wrap(p.X+p.VX*dt, p.Y+p.VY*dt)
	return true
}

// burst scatters count particles from (x, y).
func (w *World) burst(x, y float64, count int, speed, life float64) {
	for range count {
		angle := w.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + w.rng.Float64())
		l := life * (0.5 + w.rng.Float64()*0.5)
		w.Particles = append(w.Particles, Particle{
			X: x, Y: y,
			VX: math.Cos(angle) * v, VY: math.Sin(angle) * v,
			Life: l, MaxLife: l,
			Drag: 0.95,
		})
	}
}

// exhaust emits one or two particles behind a thrusting ship.
func (w *World) exhaust() {
	s := w.Ship
	size := w.cfg.Ship.Size
	x := s.X - math.Cos(s.Angle)*size*wingReach
	y := s.Y - math.Sin(s.Angle)*size*wingReach

	for range 1 + w.rng.IntN(2) {
		angle := s.Angle + math.Pi + (w.rng.Float64()-0.5)*0.5
		v := 8 + w.rng.Float64()*4
		l := 0.1 + w.rng.Float64()*0.15
		w.Particles = append(w.Particles, Particle{
			X: x, Y: y,
			VX: s.VX + math.Cos(angle)*v, VY: s.VY + math.Sin(angle)*v,
			Life: l, MaxLife: l,
			Drag: 0.85,
		})
	}
}
