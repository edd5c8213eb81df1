package game

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/asteroids-solo/internal/draw"
	"github.com/tomz197/asteroids-solo/internal/world"
)

const (
	blinkPeriod = 150 // ms per shield blink phase
	minFade     = 0.25
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render draws the world and the overlay for the current screen.
// It only reads game state.
func (g *Game) Render(s *draw.Surface) error {
	c := s.Canvas
	w := g.world

	for i := range w.Asteroids {
		drawAsteroid(c, &w.Asteroids[i])
	}
	if w.Ship != nil && g.shipVisible(w.Ship) {
		drawShip(c, w.Ship, g.cfg.Ship.Size)
	}
	for _, b := range w.Bullets {
		c.Plot(draw.Point{X: b.X, Y: b.Y})
	}
	for i := range w.Particles {
		p := &w.Particles[i]
		if p.Fade() >= minFade {
			c.Plot(draw.Point{X: p.X, Y: p.Y})
		}
	}

	g.drawOverlay(s)
	return nil
}

// shipVisible blinks the ship while it is shielded.
func (g *Game) shipVisible(s *world.Ship) bool {
	if s.Shield <= 0 {
		return true
	}
	return (g.simTime.Milliseconds()/blinkPeriod)%2 == 0
}

func drawAsteroid(c *draw.Canvas, a *world.Asteroid) {
	pts := c.Points(len(a.Shape))
	for i := range pts {
		x, y := a.Vertex(i)
		pts[i] = draw.Point{X: x, Y: y}
	}
	c.Polygon(pts, false)
}

func drawShip(c *draw.Canvas, s *world.Ship, size float64) {
	hull := s.Hull(size)
	pts := c.Points(len(hull))
	for i, v := range hull {
		pts[i] = draw.Point{X: v[0], Y: v[1]}
	}
	c.Polygon(pts, true)
}

func (g *Game) drawOverlay(s *draw.Surface) {
	mid := s.Canvas.Rows() / 2
	score := fmt.Sprintf("Score: %d", g.score)

	switch g.screen {
	case ScreenTitle:
		s.TextCentered(mid-2, titleStyle.Render("A S T E R O I D S"))
		s.TextCentered(mid+1, hudStyle.Render("Press SPACE to start"))
		s.TextCentered(mid+4, hintStyle.Render("A/D or arrows rotate, W or Up thrusts, SPACE shoots, Q or ESC quits"))
	case ScreenPlaying:
		s.Text(2, 1, hudStyle.Render(score))
		s.TextRight(1, 1, hudStyle.Render(fmt.Sprintf("Lives: %d", g.lives)))
	case ScreenDead:
		s.TextCentered(mid-2, alertStyle.Render("YOU DIED"))
		s.TextCentered(mid, hudStyle.Render(score))
		s.TextCentered(mid+2, hintStyle.Render(fmt.Sprintf("Lives remaining: %d - press SPACE to continue", g.lives)))
	case ScreenGameOver:
		s.TextCentered(mid-2, alertStyle.Render("GAME OVER"))
		s.TextCentered(mid, titleStyle.Render(score))
		s.TextCentered(mid+2, hintStyle.Render("Press SPACE to restart"))
	}
}
