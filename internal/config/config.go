// Package config holds every tunable parameter of the game, loaded from
// YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete game configuration.
type Config struct {
	Display   DisplayConfig  `yaml:"display"`
	Ship      ShipConfig     `yaml:"ship"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Rules     RulesConfig    `yaml:"rules"`
	Controls  ControlsConfig `yaml:"controls"`
	Log       LogConfig      `yaml:"log"`
	Seed      int64          `yaml:"seed" env:"ASTEROIDS_SEED"` // 0 = time based
}

// DisplayConfig sets the logical resolution and frame pacing.
// Height is in sub-pixels: two per terminal row.
type DisplayConfig struct {
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	FPS      int           `yaml:"fps" env:"ASTEROIDS_FPS"`
	MaxDelta time.Duration `yaml:"max_delta"` // clamp for one update step, 0 = none
}

// ShipConfig tunes the player's ship.
type ShipConfig struct {
	Thrust        float64 `yaml:"thrust"`         // units/s²
	RotationSpeed float64 `yaml:"rotation_speed"` // rad/s
	MaxSpeed      float64 `yaml:"max_speed"`
	Drag          float64 `yaml:"drag"` // fraction of speed kept per second without thrust
	Size          float64 `yaml:"size"`
	FireInterval  float64 `yaml:"fire_interval"` // seconds between shots
}

// AsteroidConfig tunes the asteroid field.
type AsteroidConfig struct {
	// Population is the weighted count kept alive: large 4, medium 2, small 1.
	Population      int     `yaml:"population"`
	SpawnProtection float64 `yaml:"spawn_protection"` // seconds
}

// BulletConfig tunes projectiles.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"` // seconds
}

// RulesConfig holds lives and scoring.
type RulesConfig struct {
	Lives         int     `yaml:"lives"`
	Invincibility float64 `yaml:"invincibility"` // seconds after (re)spawn
	ScoreLarge    int     `yaml:"score_large"`
	ScoreMedium   int     `yaml:"score_medium"`
	ScoreSmall    int     `yaml:"score_small"`
}

// ControlsConfig tunes keyboard handling.
type ControlsConfig struct {
	// Hold is how long a key counts as held after a fresh press.
	// Terminals report presses and auto-repeat, never releases, so Hold
	// has to outlast the auto-repeat delay or held keys stutter.
	Hold time.Duration `yaml:"hold"`
	// Repeat is the window granted by a press of a key that is already
	// held. Zero reuses Hold.
	Repeat time.Duration `yaml:"repeat"`
}

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level string `yaml:"level" env:"ASTEROIDS_LOG_LEVEL"`
	File  string `yaml:"file" env:"ASTEROIDS_LOG_FILE"` // empty = stderr
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Display.Width > 0, "display.width must be positive, got %v", c.Display.Width)
	check(c.Display.Height > 0, "display.height must be positive, got %v", c.Display.Height)
	check(c.Display.FPS >= 0, "display.fps must not be negative, got %d", c.Display.FPS)
	check(c.Display.MaxDelta >= 0, "display.max_delta must not be negative, got %v", c.Display.MaxDelta)
	check(c.Ship.Drag > 0 && c.Ship.Drag <= 1, "ship.drag must be in (0, 1], got %v", c.Ship.Drag)
	check(c.Ship.MaxSpeed > 0, "ship.max_speed must be positive, got %v", c.Ship.MaxSpeed)
	check(c.Ship.Size > 0, "ship.size must be positive, got %v", c.Ship.Size)
	check(c.Ship.FireInterval >= 0, "ship.fire_interval must not be negative, got %v", c.Ship.FireInterval)
	check(c.Asteroids.Population >= 0, "asteroids.population must not be negative, got %d", c.Asteroids.Population)
	check(c.Bullets.Speed > 0, "bullets.speed must be positive, got %v", c.Bullets.Speed)
	check(c.Bullets.Lifetime > 0, "bullets.lifetime must be positive, got %v", c.Bullets.Lifetime)
	check(c.Rules.Lives > 0, "rules.lives must be positive, got %d", c.Rules.Lives)
	check(c.Controls.Hold >= 0, "controls.hold must not be negative, got %v", c.Controls.Hold)
	check(c.Controls.Repeat >= 0, "controls.repeat must not be negative, got %v", c.Controls.Repeat)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
