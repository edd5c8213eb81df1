package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/asteroids.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:    120,
			Height:   80,
			FPS:      60,
			MaxDelta: 250 * time.Millisecond,
		},
		Ship: ShipConfig{
			Thrust:        40,
			RotationSpeed: 5,
			MaxSpeed:      25,
			Drag:          0.5,
			Size:          2,
			FireInterval:  0.15,
		},
		Asteroids: AsteroidConfig{
			Population:      30,
			SpawnProtection: 1.5,
		},
		Bullets: BulletConfig{
			Speed:    50,
			Lifetime: 1.2,
		},
		Rules: RulesConfig{
			Lives:         3,
			Invincibility: 3,
			ScoreLarge:    20,
			ScoreMedium:   50,
			ScoreSmall:    100,
		},
		Controls: ControlsConfig{
			Hold:   500 * time.Millisecond,
			Repeat: 100 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
