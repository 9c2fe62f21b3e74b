// Package pacman implements the maze pursuit game: the player clears a tile
// grid of pickups while pursuers plan their way towards it with A* search.
//
// Sim holds the simulation; Game adapts it to the registry lifecycle and
// owns pause, restart and the unplayable state after a level load error.
package pacman

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelSource overrides the configured level for new instances
var levelSource string

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

// SetLevel selects a built-in level name or a level file path for new instances.
func SetLevel(nameOrPath string) {
	levelSource = nameOrPath
}

// HUD is the state the shell overlays after each update.
type HUD struct {
	Score     int
	HighScore int
	Lives     int
	Phase     Phase
	Paused    bool
	Err       error // non-nil when the level could not be loaded
}

// Game implements registry.Game for the maze pursuit simulation.
type Game struct {
	source  string // level name or path; empty means the configured level
	level   *Level
	loadErr error

	runtime   core.RuntimeConfig
	sim       *Sim
	active    bool
	paused    bool
	highScore int
	tooSmall  bool

	logger *log.Logger
}

// New creates a game using the level chosen with SetLevel or the config.
func New() *Game {
	return NewWithSource(levelSource)
}

// NewWithSource creates a game for a built-in level name or a level file.
// The level is read on the first Reset.
func NewWithSource(source string) *Game {
	return &Game{source: source, logger: log.Default().WithPrefix("pacman")}
}

// NewWithLevel creates a game for an already parsed level.
func NewWithLevel(l *Level) *Game {
	g := NewWithSource(l.Name)
	g.level = l
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset activates the game on a fresh round. A level that failed to load
// once keeps the instance unplayable.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.active = true
	g.paused = false
	g.sim = nil

	if g.loadErr != nil {
		return
	}

	cfg := g.loadConfig()
	if g.level == nil {
		source := g.source
		if source == "" {
			source = cfg.World.Level
		}
		lvl, err := ResolveLevel(source)
		if err != nil {
			g.loadErr = err
			g.logger.Warn("level unplayable", "err", err)
			return
		}
		g.level = lvl
	}

	w, h := g.minScreen()
	g.tooSmall = runtime.ScreenW < w || runtime.ScreenH < h
	g.sim = NewSim(g.level, cfg, runtime)
}

func (g *Game) loadConfig() config.PacmanConfig {
	cfg, err := config.LoadPacman(configPath, g.runtime.Rate())
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Deactivate freezes the game until the next Reset.
func (g *Game) Deactivate() {
	g.active = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.active || g.sim == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.sim.Phase().Terminal() {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.sim.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Step(directionFrom(in))
	g.highScore = max(g.highScore, g.sim.Score())

	return core.StepResult{State: g.State()}
}

// directionFrom maps movement actions to a direction, Up first.
func directionFrom(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Phase().Terminal(),
		Paused:   g.paused,
	}
}

// HUD returns score, lives and phase for overlays.
func (g *Game) HUD() HUD {
	h := HUD{HighScore: g.highScore, Paused: g.paused, Err: g.loadErr}
	if g.sim != nil {
		h.Score = g.sim.Score()
		h.Lives = g.sim.Lives()
		h.Phase = g.sim.Phase()
	}
	return h
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// RoundOutcome reports "won" or "lost" once the round has ended.
func (g *Game) RoundOutcome() (string, bool) {
	if g.sim == nil || !g.sim.Phase().Terminal() {
		return "", false
	}
	return g.sim.Phase().String(), true
}

// LoadErr returns the level load error, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Sim exposes the running simulation (nil before Reset or when unplayable).
func (g *Game) Sim() *Sim {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}
