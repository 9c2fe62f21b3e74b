package pong

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newRally returns a game past the serve with the ball placed by the caller.
func newRally(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	g.serving = false
	g.ballVY = 0
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].Set(core.ActionUp)
		case i%40 < 30:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1 != snap2 {
		t.Errorf("Determinism failed: snapshots differ.\n%+v\n%+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	for range 300 {
		g.Step(core.InputOf(core.ActionUp))
	}
	g.playerScore = 2

	g.Reset(testConfig())

	if g.playerScore != 0 || g.cpuScore != 0 {
		t.Errorf("Reset should clear scores, got %d-%d", g.playerScore, g.cpuScore)
	}
	if !g.serving {
		t.Error("Reset should start with a serve")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestServeDelay(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	x, y := g.ballX, g.ballY

	for range 59 {
		g.Step(core.NewInputFrame())
	}
	if !g.serving || g.ballX != x || g.ballY != y {
		t.Fatalf("ball should wait at center during the serve delay")
	}

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.serving {
		t.Error("serve should end after one second")
	}
	if g.ballX == x {
		t.Error("ball should move after the serve")
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		ballY  float64
		vx     float64
		wantVX float64
		wantVY float64
	}{
		{"center hit", 12, -0.5, 0.55, 0},
		{"lower edge spins down", 14, -0.5, 0.55, 0.8 * 0.55 / 2},
		{"upper edge spins up", 10, -0.5, 0.55, -0.8 * 0.55 / 2},
		{"capped at max speed", 12, -1.15, 70.0 / 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newRally(t)
			g.ballX = 3.2
			g.ballY = tt.ballY
			g.ballVX = tt.vx

			g.updateBall()

			if !approx(g.ballVX, tt.wantVX) {
				t.Errorf("ballVX = %v, want %v", g.ballVX, tt.wantVX)
			}
			if !approx(g.ballVY, tt.wantVY) {
				t.Errorf("ballVY = %v, want %v", g.ballVY, tt.wantVY)
			}
			if g.ballX != g.playerX()+1 {
				t.Errorf("ball should sit on the paddle face, got x=%v", g.ballX)
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	g := newRally(t)
	g.ballX = 40
	g.ballY = 1.2
	g.ballVX = 0.3
	g.ballVY = -0.5

	g.updateBall()

	if g.ballY != 1 || g.ballVY != 0.5 {
		t.Errorf("ball should bounce off the top wall, got y=%v vy=%v", g.ballY, g.ballVY)
	}
}

func TestScoringAndWin(t *testing.T) {
	g := newRally(t)

	for point := 1; point <= 3; point++ {
		g.serving = false
		g.ballX = 80.5
		g.ballY = 12
		g.ballVX = 0.5
		g.updateBall()

		if g.playerScore != point {
			t.Fatalf("player score = %d, want %d", g.playerScore, point)
		}
		if got := g.State().Score; got != point*PointValue {
			t.Errorf("reported score = %d, want %d", got, point*PointValue)
		}
	}

	if !g.State().GameOver {
		t.Fatal("first to three should end the match")
	}
	outcome, over := g.RoundOutcome()
	if !over || outcome != "won" {
		t.Errorf("RoundOutcome() = %q, %v; want won", outcome, over)
	}

	// Input other than restart is ignored after the match.
	g.Step(core.InputOf(core.ActionUp))
	if !g.State().GameOver {
		t.Error("match should stay over")
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.State().GameOver || g.playerScore != 0 {
		t.Error("restart should begin a new match")
	}
}

func TestCPUScoresOnMiss(t *testing.T) {
	g := newRally(t)
	g.playerY = 1
	g.ballX = 0.2
	g.ballY = 20
	g.ballVX = -0.5
	g.updateBall()

	if g.cpuScore != 1 {
		t.Fatalf("cpu score = %d, want 1", g.cpuScore)
	}
	if !g.serving || g.ballVX >= 0 {
		t.Error("next serve should go towards the player")
	}
	if g.State().Score != 0 {
		t.Error("cpu points do not count towards the player's score")
	}
}

func TestCPUChasesBall(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.ballY = 18

	for range 40 {
		g.Step(core.NewInputFrame())
	}

	center := g.cpuY + float64(g.cfg.Paddles.Height)/2
	if !approx(center, 18) {
		t.Errorf("cpu paddle center = %v, want 18", center)
	}
}

func TestDeactivateFreezes(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	g.Deactivate()
	before := g.Snapshot()

	for range 50 {
		g.Step(core.InputOf(core.ActionDown))
	}
	if g.Snapshot() != before {
		t.Error("inactive game should not advance")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"YOU", "CPU", string(PaddleChar), string(NetChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
