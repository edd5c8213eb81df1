package world

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroids-solo/internal/config"
)

// newTestWorld builds a 120x80 world with no automatic asteroid spawning.
func newTestWorld(t *testing.T, mutate func(*config.Config)) *World {
	t.Helper()
	cfg := config.Default()
	cfg.Asteroids.Population = 0
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	return New(cfg, NewRand(1))
}

func rock(x, y float64, size Size) Asteroid {
	r := size.Radius()
	return Asteroid{X: x, Y: y, Size: size, Radius: r, Shape: []float64{r, r, r, r}}
}

func TestElapsedIsSumOfSteps(t *testing.T) {
	w := newTestWorld(t, nil)
	steps := []time.Duration{10 * time.Millisecond, 16 * time.Millisecond, 33 * time.Millisecond, 0, time.Second}

	var sum time.Duration
	for _, dt := range steps {
		w.Step(dt, Controls{})
		sum += dt
	}
	assert.Equal(t, sum, w.Elapsed)
}

func TestShipThrust(t *testing.T) {
	w := newTestWorld(t, nil)
	s := w.SpawnShip(0)

	w.Step(100*time.Millisecond, Controls{Thrust: true})

	assert.InDelta(t, 0, s.VX, 1e-9)
	assert.InDelta(t, -4, s.VY, 1e-9)
	assert.True(t, s.Thrusting)
	assert.NotEmpty(t, w.Particles, "thrust leaves exhaust")
}

func TestShipSpeedIsCapped(t *testing.T) {
	w := newTestWorld(t, nil)
	s := w.SpawnShip(0)

	for range 100 {
		w.Step(100*time.Millisecond, Controls{Thrust: true})
	}
	assert.LessOrEqual(t, s.Speed(), w.cfg.Ship.MaxSpeed+1e-9)
	assert.InDelta(t, w.cfg.Ship.MaxSpeed, s.Speed(), 1e-6)
}

func TestShipDrag(t *testing.T) {
	w := newTestWorld(t, nil)
	s := w.SpawnShip(0)
	s.VX = 10

	w.Step(time.Second, Controls{})

	assert.InDelta(t, 5, s.VX, 1e-9)
	assert.False(t, s.Thrusting)
}

func TestShipRotation(t *testing.T) {
	w := newTestWorld(t, nil)
	s := w.SpawnShip(0)

	w.Step(100*time.Millisecond, Controls{Right: true})
	assert.InDelta(t, -math.Pi/2+0.5, s.Angle, 1e-9)

	w.Step(200*time.Millisecond, Controls{Left: true})
	assert.InDelta(t, -math.Pi/2-0.5, s.Angle, 1e-9)
}

func TestShipWrapsAroundEdges(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Ship.Drag = 1 })
	s := w.SpawnShip(0)
	s.X = 119.5
	s.VX = 10

	w.Step(100*time.Millisecond, Controls{})

	assert.InDelta(t, 0.5, s.X, 1e-9)
}

func TestShieldCountsDown(t *testing.T) {
	w := newTestWorld(t, nil)
	s := w.SpawnShip(0.25)

	w.Step(125*time.Millisecond, Controls{})
	assert.InDelta(t, 0.125, s.Shield, 1e-9)
	w.Step(time.Second, Controls{})
	assert.Zero(t, s.Shield)
}

func TestFireRespectsInterval(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.Ship.FireInterval = 0.25
		c.Bullets.Lifetime = 5
	})
	w.SpawnShip(0)

	fired := 0
	for range 8 {
		fired += w.Step(125*time.Millisecond, Controls{Fire: true}).Fired
	}

	assert.Equal(t, 4, fired)
	assert.Len(t, w.Bullets, 4)
}

func TestBulletInheritsShipVelocity(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Ship.Drag = 1 })
	s := w.SpawnShip(0)
	s.VX = 7

	w.Step(0, Controls{Fire: true})

	require.Len(t, w.Bullets, 1)
	assert.InDelta(t, 7, w.Bullets[0].VX, 1e-9)
	assert.InDelta(t, -w.cfg.Bullets.Speed, w.Bullets[0].VY, 1e-9)
}

func TestBulletExpires(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Bullets = []Bullet{{X: 10, Y: 10, VX: 1, Life: 1.2}}

	for range 9 {
		w.Step(125*time.Millisecond, Controls{})
	}
	require.Len(t, w.Bullets, 1)

	w.Step(125*time.Millisecond, Controls{})
	assert.Empty(t, w.Bullets)
}

func TestBulletSplitsAsteroid(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Asteroids = []Asteroid{rock(50, 50, Large)}
	w.Bullets = []Bullet{{X: 50, Y: 50, Life: 1}}

	r := w.Step(16*time.Millisecond, Controls{})

	assert.Equal(t, []Size{Large}, r.Destroyed)
	assert.Empty(t, w.Bullets)
	require.Len(t, w.Asteroids, 2)
	for _, a := range w.Asteroids {
		assert.Equal(t, Medium, a.Size)
		assert.Equal(t, Medium.Radius(), a.Radius)
	}
	assert.Len(t, w.Particles, int(Large)*burstPerSize)
	assert.Equal(t, 4, w.AsteroidWeight(), "splitting keeps the weight")
}

func TestSmallAsteroidLeavesNoFragments(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Asteroids = []Asteroid{rock(50, 50, Small)}
	w.Bullets = []Bullet{{X: 50.5, Y: 50, Life: 1}}

	r := w.Step(0, Controls{})

	assert.Equal(t, []Size{Small}, r.Destroyed)
	assert.Empty(t, w.Asteroids)
}

func TestBulletHitsAcrossEdge(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Asteroids = []Asteroid{rock(119, 40, Medium)}
	w.Bullets = []Bullet{{X: 0.5, Y: 40, Life: 1}}

	r := w.Step(0, Controls{})
	assert.Equal(t, []Size{Medium}, r.Destroyed)
}

func TestBulletRadiusCountsTowardHits(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		hit    bool
	}{
		{"inside the rock", -0.2, true},
		{"grazing the rim", BulletRadius - 0.1, true},
		{"clear of the rim", BulletRadius + 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			w.Asteroids = []Asteroid{rock(50, 50, Medium)}
			w.Bullets = []Bullet{{X: 50 + Medium.Radius() + tt.offset, Y: 50, Life: 1}}

			r := w.Step(0, Controls{})

			if tt.hit {
				assert.Equal(t, []Size{Medium}, r.Destroyed)
				assert.Empty(t, w.Bullets)
			} else {
				assert.Empty(t, r.Destroyed)
				assert.Len(t, w.Bullets, 1)
			}
		})
	}
}

func TestProtectedAsteroidIgnoresBullets(t *testing.T) {
	w := newTestWorld(t, nil)
	a := rock(50, 50, Large)
	a.Protection = 1
	w.Asteroids = []Asteroid{a}
	w.Bullets = []Bullet{{X: 50, Y: 50, Life: 2}}

	r := w.Step(16*time.Millisecond, Controls{})

	assert.Empty(t, r.Destroyed)
	assert.Len(t, w.Bullets, 1)
	assert.Len(t, w.Asteroids, 1)
}

func TestOneBulletOneAsteroid(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Asteroids = []Asteroid{rock(50, 50, Small), rock(50.5, 50, Small)}
	w.Bullets = []Bullet{{X: 50.2, Y: 50, Life: 1}}

	r := w.Step(0, Controls{})

	assert.Len(t, r.Destroyed, 1)
	assert.Len(t, w.Asteroids, 1)
}

func TestShipHitByAsteroid(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SpawnShip(0)
	w.Asteroids = []Asteroid{rock(61, 40, Large)}

	r := w.Step(16*time.Millisecond, Controls{})

	assert.True(t, r.ShipHit)
	assert.Nil(t, w.Ship)
	assert.Len(t, w.Particles, shipBurst)
}

func TestShieldedShipSurvives(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SpawnShip(1)
	w.Asteroids = []Asteroid{rock(61, 40, Large)}

	r := w.Step(16*time.Millisecond, Controls{})

	assert.False(t, r.ShipHit)
	assert.NotNil(t, w.Ship)
}

func TestProtectedAsteroidDoesNotKillShip(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SpawnShip(0)
	a := rock(61, 40, Large)
	a.Protection = 1
	w.Asteroids = []Asteroid{a}

	r := w.Step(16*time.Millisecond, Controls{})
	assert.False(t, r.ShipHit)
}

func TestAsteroidsBounceElastically(t *testing.T) {
	w := newTestWorld(t, nil)
	a, b := rock(50, 40, Large), rock(57, 40, Large)
	a.VX, b.VX = 5, -5
	w.Asteroids = []Asteroid{a, b}

	w.Step(10*time.Millisecond, Controls{})

	require.Len(t, w.Asteroids, 2)
	assert.InDelta(t, -5, w.Asteroids[0].VX, 1e-9)
	assert.InDelta(t, 5, w.Asteroids[1].VX, 1e-9)
	gap := w.Asteroids[1].X - w.Asteroids[0].X
	assert.InDelta(t, 10, gap, 1e-9, "pushed apart to touching distance")
}

func TestPopulateKeepsWeight(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Asteroids.Population = 30 })
	ship := w.SpawnShip(0)

	w.Populate()

	assert.Len(t, w.Asteroids, 7)
	assert.Equal(t, 28, w.AsteroidWeight())
	for _, a := range w.Asteroids {
		assert.Equal(t, Large, a.Size)
		assert.Equal(t, w.cfg.Asteroids.SpawnProtection, a.Protection)
		d := w.Bounds.DistanceSquared(a.X, a.Y, ship.X, ship.Y)
		assert.GreaterOrEqual(t, d, safeRadius*safeRadius)
	}
}

func TestStepReplenishes(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Asteroids.Population = 8 })
	w.Step(0, Controls{})
	assert.Equal(t, 8, w.AsteroidWeight())
}

func TestSameSeedSameField(t *testing.T) {
	cfg := config.Default()
	a := New(cfg, NewRand(42))
	b := New(cfg, NewRand(42))
	a.Populate()
	b.Populate()
	assert.Equal(t, a.Asteroids, b.Asteroids)
}

func TestCloneIsDeep(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SpawnShip(0)
	w.Asteroids = []Asteroid{rock(10, 10, Large)}
	w.Bullets = []Bullet{{X: 1, Life: 1}}

	c := w.Clone()
	assert.Equal(t, w, c)

	c.Ship.X = 99
	c.Asteroids[0].Shape[0] = 42
	c.Bullets[0].X = 5
	assert.NotEqual(t, 99.0, w.Ship.X)
	assert.NotEqual(t, 42.0, w.Asteroids[0].Shape[0])
	assert.Equal(t, 1.0, w.Bullets[0].X)
}

func TestClearAndClearEffects(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SpawnShip(0)
	w.Asteroids = []Asteroid{rock(10, 10, Large)}
	w.Bullets = []Bullet{{Life: 1}}
	w.Particles = []Particle{{Life: 1}}

	w.ClearEffects()
	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.Particles)
	assert.Len(t, w.Asteroids, 1)

	w.Clear()
	assert.Nil(t, w.Ship)
	assert.Empty(t, w.Asteroids)
}

func TestSizeProperties(t *testing.T) {
	assert.Equal(t, "large", Large.String())
	assert.Equal(t, "unknown", Size(9).String())
	assert.Equal(t, Large.Weight(), 2*Medium.Weight())
	assert.Equal(t, Medium.Weight(), 2*Small.Weight())
	assert.Greater(t, Small.Speed(), Large.Speed())
	assert.Zero(t, Size(0).Radius())
}
