// Package pong implements a paddle game against a CPU that chases the ball.
// The player controls the left paddle, the CPU the right one.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// PointValue is the score reported for each point the player wins.
const PointValue = 100

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements the paddle game logic.
type Game struct {
	// Paddles, top edge in rows
	playerY float64
	cpuY    float64

	// Ball position and per-tick velocity
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	playerScore int
	cpuScore    int

	active     bool
	gameOver   bool
	paused     bool
	serving    bool
	serveTimer int
	tickCount  int

	runtime    core.RuntimeConfig
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
}

// New creates a new game instance. Configuration is read on Reset.
func New() *Game {
	return &Game{logger: log.Default().WithPrefix("pong")}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.active = true
	g.paused = false
	g.restart()
}

func (g *Game) loadConfig() config.PongConfig {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func (g *Game) restart() {
	center := float64(g.runtime.ScreenH)/2 - float64(g.cfg.Paddles.Height)/2
	g.playerY = center
	g.cpuY = center
	g.playerScore = 0
	g.cpuScore = 0
	g.gameOver = false
	g.tickCount = 0
	g.serve(1)
}

// Deactivate freezes the game until the next Reset.
func (g *Game) Deactivate() {
	g.active = false
}

// perTick converts a speed in cells per second to cells per tick.
func (g *Game) perTick(cellsPerSecond float64) float64 {
	return cellsPerSecond / float64(g.runtime.Rate())
}

// serve centers the ball and sends it towards the given side
// (-1 towards the player, 1 towards the CPU) after the serve delay.
func (g *Game) serve(towards int) {
	g.serving = true
	g.serveTimer = g.runtime.Ticks(g.cfg.Gameplay.ServeDelay)

	g.ballX = float64(g.runtime.ScreenW) / 2
	g.ballY = float64(g.runtime.ScreenH) / 2

	speed := g.perTick(g.cfg.Physics.BallSpeed)
	g.ballVX = speed * float64(towards)
	// Rows are about twice as tall as columns are wide.
	g.ballVY = speed / 2
	if g.rng.Intn(2) == 0 {
		g.ballVY = -g.ballVY
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.active {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	speed := g.perTick(g.cfg.Physics.PaddleSpeed)
	if in.Has(core.ActionUp) {
		g.playerY -= speed
	}
	if in.Has(core.ActionDown) {
		g.playerY += speed
	}
	g.playerY = g.clampPaddle(g.playerY)

	g.updateCPU()

	if g.serving {
		g.serveTimer--
		if g.serveTimer <= 0 {
			g.serving = false
		}
		return core.StepResult{State: g.State()}
	}
	g.updateBall()

	return core.StepResult{State: g.State()}
}

func (g *Game) clampPaddle(y float64) float64 {
	maxY := float64(g.runtime.ScreenH - g.cfg.Paddles.Height - 1)
	return core.ClampF(y, 1, maxY)
}

// updateCPU moves the CPU paddle center towards the ball.
func (g *Game) updateCPU() {
	base := g.perTick(g.cfg.Physics.CPUSpeed)
	speed := g.difficulty.Speed(base, g.playerScore, g.tickCount)

	diff := g.ballY - (g.cpuY + float64(g.cfg.Paddles.Height)/2)
	g.cpuY += math.Copysign(min(speed, math.Abs(diff)), diff)
	g.cpuY = g.clampPaddle(g.cpuY)
}

func (g *Game) playerX() float64 {
	return float64(g.cfg.Paddles.Offset)
}

func (g *Game) cpuX() float64 {
	return float64(g.runtime.ScreenW - g.cfg.Paddles.Offset - g.cfg.Paddles.Width)
}

// updateBall moves the ball and resolves walls, paddles and scoring.
func (g *Game) updateBall() {
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	top, bottom := 1.0, float64(g.runtime.ScreenH-2)
	if g.ballY <= top {
		g.ballY = top
		g.ballVY = math.Abs(g.ballVY)
	}
	if g.ballY >= bottom {
		g.ballY = bottom
		g.ballVY = -math.Abs(g.ballVY)
	}

	width := float64(g.cfg.Paddles.Width)
	if g.ballVX < 0 && g.ballX <= g.playerX()+width && g.ballX >= g.playerX()-1 && g.onPaddle(g.playerY) {
		g.ballX = g.playerX() + width
		g.bounce(g.playerY)
	}
	if g.ballVX > 0 && g.ballX >= g.cpuX() && g.ballX <= g.cpuX()+width+1 && g.onPaddle(g.cpuY) {
		g.ballX = g.cpuX() - 1
		g.bounce(g.cpuY)
	}

	switch {
	case g.ballX < 0:
		g.point(&g.cpuScore, -1)
	case g.ballX > float64(g.runtime.ScreenW):
		g.point(&g.playerScore, 1)
	}
}

func (g *Game) onPaddle(paddleY float64) bool {
	return g.ballY >= paddleY && g.ballY <= paddleY+float64(g.cfg.Paddles.Height)
}

// bounce reverses the ball, speeds it up and sets the vertical speed from
// where it hit the paddle: the edges deflect the most.
func (g *Game) bounce(paddleY float64) {
	maxSpeed := g.perTick(g.cfg.Physics.MaxBallSpeed)
	vx := min(math.Abs(g.ballVX)*g.cfg.Physics.SpeedUp, maxSpeed)
	g.ballVX = math.Copysign(vx, -g.ballVX)

	half := float64(g.cfg.Paddles.Height) / 2
	offset := core.ClampF((g.ballY-(paddleY+half))/half, -1, 1)
	g.ballVY = offset * vx / 2
}

// point awards a point and serves towards the side that conceded
// (-1 the player, 1 the CPU).
func (g *Game) point(score *int, conceded int) {
	*score++
	g.logger.Debug("point", "player", g.playerScore, "cpu", g.cpuScore)
	if *score >= g.cfg.Gameplay.WinScore {
		g.gameOver = true
		return
	}
	g.serve(conceded)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	px, cx := int(g.playerX()), int(g.cpuX())
	for i := range g.cfg.Paddles.Height {
		for w := range g.cfg.Paddles.Width {
			dst.SetColored(px+w, int(g.playerY)+i, PaddleChar, core.ColorGreen)
			dst.SetColored(cx+w, int(g.cpuY)+i, PaddleChar, core.ColorRed)
		}
	}

	if !g.serving || (g.serveTimer/10)%2 == 0 {
		dst.SetColored(int(g.ballX), int(g.ballY), BallChar, core.ColorBrightWhite)
	}

	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.playerScore))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.cpuScore))
	dst.DrawText(1, 0, "YOU")
	dst.DrawText(dst.Width()-4, 0, "CPU")

	switch {
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	case g.gameOver:
		msg := "CPU WINS!"
		if g.playerScore > g.cpuScore {
			msg = "YOU WIN!"
		}
		dst.DrawOverlay(msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.playerScore, g.cpuScore))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.playerScore * PointValue,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RoundOutcome reports "won" or "lost" once the match has ended.
func (g *Game) RoundOutcome() (string, bool) {
	if !g.gameOver {
		return "", false
	}
	if g.playerScore > g.cpuScore {
		return "won", true
	}
	return "lost", true
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
