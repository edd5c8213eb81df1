// Package game implements the Asteroids rules on top of the world
// simulation: screens, score, lives and keyboard controls.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-solo/internal/config"
	"github.com/tomz197/asteroids-solo/internal/input"
	"github.com/tomz197/asteroids-solo/internal/logging"
	"github.com/tomz197/asteroids-solo/internal/world"
)

// Screen is the current game phase.
type Screen int

const (
	ScreenTitle    Screen = iota // Title, waiting for start
	ScreenPlaying                // Active gameplay
	ScreenDead                   // Ship lost, lives left
	ScreenGameOver               // No lives left
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenDead:
		return "dead"
	case ScreenGameOver:
		return "game over"
	}
	return "unknown"
}

// confirmDelay keeps a held fire key from skipping the death screens.
const confirmDelay = 500 * time.Millisecond

// Game is one play session.
type Game struct {
	cfg    config.Config
	world  *world.World
	logger *log.Logger

	screen      Screen
	screenSince time.Duration // simulated time the screen was entered
	score       int
	lives       int

	keys    heldKeys
	confirm bool // start/continue pressed since the last update
	simTime time.Duration
}

// New creates a game on the title screen with asteroids drifting behind it.
func New(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	g := &Game{
		cfg:    cfg,
		world:  world.New(cfg, rng),
		logger: logger,
		screen: ScreenTitle,
		lives:  cfg.Rules.Lives,
		keys:   newHeldKeys(cfg.Controls),
	}
	g.world.Populate()
	return g
}

// Screen returns the current screen.
func (g *Game) Screen() Screen { return g.screen }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the lives left, including the current ship.
func (g *Game) Lives() int { return g.lives }

// World returns the simulated world.
func (g *Game) World() *world.World { return g.world }

// SimTime returns the sum of every dt passed to Update.
func (g *Game) SimTime() time.Duration { return g.simTime }

// HandleEvent records a key press for the next update.
func (g *Game) HandleEvent(ev input.Event) {
	if ev.Type != input.EventKeyDown {
		return
	}
	switch ev.Key {
	case input.KeyLeft, input.KeyRight, input.KeyUp:
		g.keys.press(ev.Key, g.simTime)
	case input.KeySpace:
		g.keys.tap(ev.Key, g.simTime)
		g.confirm = true
	case input.KeyEnter:
		g.confirm = true
	}
}

// Update advances the game by dt.
func (g *Game) Update(dt time.Duration) error {
	controls := g.keys.controls(g.simTime)
	g.simTime += dt

	switch g.screen {
	case ScreenTitle:
		g.world.Step(dt, world.Controls{})
		if g.confirm {
			g.newGame()
		}
	case ScreenPlaying:
		g.play(dt, controls)
	case ScreenDead:
		g.world.Step(dt, world.Controls{})
		if g.confirm && g.confirmReady() {
			g.respawn()
		}
	case ScreenGameOver:
		g.world.Step(dt, world.Controls{})
		if g.confirm && g.confirmReady() {
			g.newGame()
		}
	}
	g.confirm = false
	return nil
}

func (g *Game) play(dt time.Duration, controls world.Controls) {
	r := g.world.Step(dt, controls)
	for _, size := range r.Destroyed {
		g.score += g.points(size)
	}
	if !r.ShipHit {
		return
	}

	g.lives--
	if g.lives > 0 {
		g.logger.Info("ship lost", "lives", g.lives, "score", g.score)
		g.setScreen(ScreenDead)
		return
	}
	g.logger.Info("game over", "score", g.score, "time", g.simTime)
	g.setScreen(ScreenGameOver)
}

// points returns the score for shooting an asteroid of size.
func (g *Game) points(size world.Size) int {
	switch size {
	case world.Large:
		return g.cfg.Rules.ScoreLarge
	case world.Medium:
		return g.cfg.Rules.ScoreMedium
	case world.Small:
		return g.cfg.Rules.ScoreSmall
	}
	return 0
}

// newGame clears the field and starts over with full lives.
func (g *Game) newGame() {
	g.world.Clear()
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.world.SpawnShip(g.cfg.Rules.Invincibility)
	g.world.Populate()
	g.logger.Debug("new game", "lives", g.lives)
	g.setScreen(ScreenPlaying)
}

// respawn brings back the ship, keeping the asteroids where they are.
func (g *Game) respawn() {
	g.world.ClearEffects()
	g.world.SpawnShip(g.cfg.Rules.Invincibility)
	g.setScreen(ScreenPlaying)
}

func (g *Game) setScreen(s Screen) {
	g.screen = s
	g.screenSince = g.simTime
	g.keys.reset()
}

func (g *Game) confirmReady() bool {
	return g.simTime-g.screenSince >= confirmDelay
}
