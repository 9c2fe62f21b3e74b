// Package sandbox is a minimal channel: a ball steered with the arrow keys.
// It has no score and never ends.
package sandbox

import (
	"math"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

const (
	// BallSpeed is in columns per second. Rows move at half the rate so the
	// ball covers about the same distance on screen in both axes.
	BallSpeed = 30.0

	// BallRadius is in rows.
	BallRadius = 1.5

	BallChar = '●'
	Hint     = "Use arrow keys to move the ball"
)

// Game implements registry.Game for the sandbox channel.
type Game struct {
	pos     core.Vec2
	runtime core.RuntimeConfig
	active  bool
	paused  bool
}

// New creates a sandbox instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sandbox"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sandbox"
}

// Reset centers the ball.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.pos = core.V(float64(runtime.ScreenW)/2, float64(runtime.ScreenH)/2)
	g.active = true
	g.paused = false
}

// Deactivate freezes the ball until the next Reset.
func (g *Game) Deactivate() {
	g.active = false
}

// Step moves the ball by the held directions, wrapping at the screen edges.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.active {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	step := BallSpeed / float64(g.runtime.Rate())
	var d core.Vec2
	if in.Has(core.ActionRight) {
		d.X += step
	}
	if in.Has(core.ActionLeft) {
		d.X -= step
	}
	if in.Has(core.ActionDown) {
		d.Y += step / 2
	}
	if in.Has(core.ActionUp) {
		d.Y -= step / 2
	}
	g.pos = g.pos.Add(d)
	g.pos.X = wrap(g.pos.X, float64(g.runtime.ScreenW))
	g.pos.Y = wrap(g.pos.Y, float64(g.runtime.ScreenH))

	return core.StepResult{State: g.State()}
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Pos returns the ball center in screen cells.
func (g *Game) Pos() core.Vec2 {
	return g.pos
}

// Render draws the ball as a disc; a column counts as half a row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	r := BallRadius
	for dy := -int(r); dy <= int(r); dy++ {
		for dx := -int(2 * r); dx <= int(2*r); dx++ {
			if core.V(float64(dx)/2, float64(dy)).Len() > r {
				continue
			}
			x := int(wrap(math.Floor(g.pos.X)+float64(dx), float64(w)))
			y := int(wrap(math.Floor(g.pos.Y)+float64(dy), float64(h)))
			dst.SetColored(x, y, BallChar, core.ColorRed)
		}
	}

	dst.DrawTextColored(1, 0, Hint, core.ColorGray)
	if g.paused {
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The sandbox never scores or ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Register the game with the registry
func init() {
	registry.Register("sandbox", func() registry.Game {
		return New()
	})
}
