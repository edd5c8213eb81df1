package world

import (
	"math"

	"github.com/tomz197/asteroids-solo/internal/config"
	"github.com/tomz197/asteroids-solo/internal/physics"
)

// Ship geometry relative to its size.
const (
	noseReach = 1.5  // nose distance from center, in sizes
	wingReach = 1.0  // wing tip distance from center, in sizes
	wingAngle = 2.45 // ~140 degrees from the nose
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y      float64
	VX, VY    float64
	Angle     float64 // radians, 0 points right, -π/2 points up
	Shield    float64 // seconds of invulnerability left
	Thrusting bool    // thrust was applied during the last step

	cooldown float64 // seconds until the next shot
}

// NewShip creates a ship at rest pointing up.
func NewShip(x, y float64) *Ship {
	return &Ship{X: x, Y: y, Angle: -math.Pi / 2}
}

// Speed returns the magnitude of the ship's velocity.
func (s *Ship) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Nose returns the tip of the ship for a given size.
func (s *Ship) Nose(size float64) (float64, float64) {
	return s.X + math.Cos(s.Angle)*size*noseReach, s.Y + math.Sin(s.Angle)*size*noseReach
}

// Hull returns the ship's three vertices: nose, left wing, right wing.
func (s *Ship) Hull(size float64) [3][2]float64 {
	nx, ny := s.Nose(size)
	return [3][2]float64{
		{nx, ny},
		{s.X + math.Cos(s.Angle+wingAngle)*size*wingReach, s.Y + math.Sin(s.Angle+wingAngle)*size*wingReach},
		{s.X + math.Cos(s.Angle-wingAngle)*size*wingReach, s.Y + math.Sin(s.Angle-wingAngle)*size*wingReach},
	}
}

// stepShip applies rotation, thrust, drag, the speed cap and wrapping.
// It reports whether the ship fires this step.
func stepShip(s *Ship, c Controls, cfg config.ShipConfig, bounds physics.Bounds, dt float64) bool {
	if c.Left {
		s.Angle -= cfg.RotationSpeed * dt
	}
	if c.Right {
		s.Angle += cfg.RotationSpeed * dt
	}
	s.Angle = math.Remainder(s.Angle, 2*math.Pi)

	s.Thrusting = c.Thrust
	if c.Thrust {
		s.VX += math.Cos(s.Angle) * cfg.Thrust * dt
		s.VY += math.Sin(s.Angle) * cfg.Thrust * dt
	} else {
		keep := math.Pow(cfg.Drag, dt)
		s.VX *= keep
		s.VY *= keep
	}

	if speed := s.Speed(); speed > cfg.MaxSpeed {
		scale := cfg.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.X, s.Y = bounds.Wrap(s.X+s.VX*dt, s.Y+s.VY*dt)

	if s.Shield > 0 {
		s.Shield = max(0, s.Shield-dt)
	}

	s.cooldown -= dt
	if c.Fire && s.cooldown <= 0 {
		s.cooldown = cfg.FireInterval
		return true
	}
	return false
}

// fire launches a bullet from the ship's nose, inheriting its velocity.
func (w *World) fire() {
	s := w.Ship
	x, y := s.Nose(w.cfg.Ship.Size)
	x, y = w.Bounds.Wrap(x, y)
	w.Bullets = append(w.Bullets, Bullet{
		X:    x,
		Y:    y,
		VX:   s.VX + math.Cos(s.Angle)*w.cfg.Bullets.Speed,
		VY:   s.VY + math.Sin(s.Angle)*w.cfg.Bullets.Speed,
		Life: w.cfg.Bullets.Lifetime,
	})
}
