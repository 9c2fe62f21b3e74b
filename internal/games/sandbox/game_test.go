package sandbox

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func TestArrowsMoveBall(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		dx, dy float64
	}{
		{"right", core.ActionRight, 0.5, 0},
		{"left", core.ActionLeft, -0.5, 0},
		{"down", core.ActionDown, 0, 0.25},
		{"up", core.ActionUp, 0, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Reset(testConfig())
			start := g.Pos()

			g.Step(core.InputOf(tt.action))

			got := g.Pos().Sub(start)
			if got.X != tt.dx || got.Y != tt.dy {
				t.Errorf("moved by %+v, want (%v, %v)", got, tt.dx, tt.dy)
			}
		})
	}
}

func TestBallWrapsAtEdges(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// 81 ticks at half a column per tick crosses the left edge.
	for range 81 {
		g.Step(core.InputOf(core.ActionLeft))
	}
	if x := g.Pos().X; x < 79 || x >= 80 {
		t.Errorf("ball should wrap to the right edge, got x=%v", x)
	}

	for range 49 {
		g.Step(core.InputOf(core.ActionUp))
	}
	if y := g.Pos().Y; y < 23 || y >= 24 {
		t.Errorf("ball should wrap to the bottom edge, got y=%v", y)
	}
}

func TestNeverEnds(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	for i := range 1000 {
		if res := g.Step(core.InputOf(core.ActionRight, core.ActionDown)); res.State.GameOver || res.State.Score != 0 {
			t.Fatalf("tick %d: sandbox reported %+v", i, res.State)
		}
	}
}

func TestDeactivateFreezes(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Deactivate()
	start := g.Pos()
	g.Step(core.InputOf(core.ActionRight))
	if g.Pos() != start {
		t.Error("inactive sandbox should not move")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), Hint) {
		t.Error("hint should be drawn on the first row")
	}
	if screen.Get(40, 12) != BallChar {
		t.Errorf("ball should be drawn at the center, got %q", screen.Get(40, 12))
	}
}
