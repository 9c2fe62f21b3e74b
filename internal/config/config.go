// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// PacmanConfig contains all configuration for the maze pursuit game.
// Speeds are in tiles per second, durations in seconds and radii are
// fractions of the tile size; the game converts them to per-tick values.
type PacmanConfig struct {
	World      PacmanWorld      `yaml:"world"`
	Player     PacmanPlayer     `yaml:"player"`
	Pursuers   PacmanPursuers   `yaml:"pursuers"`
	Timing     PacmanTiming     `yaml:"timing"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanWorld defines the board.
type PacmanWorld struct {
	Level        string  `yaml:"level"`     // embedded level name or path to a level file
	TileSize     float64 `yaml:"tile_size"` // world units per tile
	Lives        int     `yaml:"lives"`
	PickupRadius float64 `yaml:"pickup_radius"`
	PotentRadius float64 `yaml:"potent_radius"`
}

// PacmanPlayer defines the player agent.
type PacmanPlayer struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// PacmanPursuers defines the pursuer agents and their targeting.
type PacmanPursuers struct {
	Speed         float64 `yaml:"speed"`
	Radius        float64 `yaml:"radius"`
	RetreatFactor float64 `yaml:"retreat_factor"` // speed multiplier while retreating
	Lookahead     int     `yaml:"lookahead"`      // tiles ahead of the player (Pinky)
	PivotAhead    int     `yaml:"pivot_ahead"`    // pivot tiles ahead of the player (Inky)
	ShyDistance   float64 `yaml:"shy_distance"`   // tiles; Clyde scatters when closer
}

// PacmanTiming defines phase and state durations.
type PacmanTiming struct {
	ReadyDelay      float64 `yaml:"ready_delay"`
	DyingDelay      float64 `yaml:"dying_delay"`
	RetreatDuration float64 `yaml:"retreat_duration"`
	CaptureDuration float64 `yaml:"capture_duration"`
}

// PacmanScoring defines point values.
type PacmanScoring struct {
	Pickup      int `yaml:"pickup"`
	Potent      int `yaml:"potent"`
	CaptureBase int `yaml:"capture_base"` // doubled for each capture in one retreat
	CaptureCap  int `yaml:"capture_cap"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle motion in cells per second.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	CPUSpeed     float64 `yaml:"cpu_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpeedUp      float64 `yaml:"speed_up"` // horizontal multiplier on each paddle hit
}

// PongPaddles defines paddle geometry in cells.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int     `yaml:"win_score"`
	ServeDelay float64 `yaml:"serve_delay"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration is playable at the given tick rate.
// An agent must cover less than half a tile per tick, otherwise it can step
// over a tile centre without being snapped to it.
func (c PacmanConfig) Validate(tickRate int) error {
	if tickRate <= 0 {
		return invalid("tick rate must be positive, got %d", tickRate)
	}
	if c.World.TileSize <= 0 {
		return invalid("world.tile_size must be positive, got %v", c.World.TileSize)
	}
	if c.World.Lives <= 0 {
		return invalid("world.lives must be positive, got %d", c.World.Lives)
	}
	fractions := []struct {
		name  string
		value float64
	}{
		{"world.pickup_radius", c.World.PickupRadius},
		{"world.potent_radius", c.World.PotentRadius},
		{"player.radius", c.Player.Radius},
		{"pursuers.radius", c.Pursuers.Radius},
		{"pursuers.retreat_factor", c.Pursuers.RetreatFactor},
	}
	for _, f := range fractions {
		if f.value <= 0 || f.value > 1 {
			return invalid("%s must be in (0, 1], got %v", f.name, f.value)
		}
	}

	limit := float64(tickRate) / 2
	pursuerMax := c.Pursuers.Speed * (1 + max(0, c.Difficulty.Scaling.SpeedMultiplier))
	switch {
	case c.Player.Speed <= 0 || c.Player.Speed >= limit:
		return invalid("player.speed must be in (0, %v) tiles/s, got %v", limit, c.Player.Speed)
	case c.Pursuers.Speed <= 0 || pursuerMax >= limit:
		return invalid("pursuers.speed must be in (0, %v) tiles/s at max difficulty, got %v", limit, pursuerMax)
	}

	if c.Timing.ReadyDelay < 0 || c.Timing.DyingDelay < 0 {
		return invalid("timing delays must not be negative")
	}
	if c.Timing.RetreatDuration <= 0 || c.Timing.CaptureDuration <= 0 {
		return invalid("timing.retreat_duration and timing.capture_duration must be positive")
	}
	if c.Scoring.CaptureCap < c.Scoring.CaptureBase {
		return invalid("scoring.capture_cap (%d) is below capture_base (%d)", c.Scoring.CaptureCap, c.Scoring.CaptureBase)
	}
	return nil
}

// Validate checks Pong settings.
func (c PongConfig) Validate() error {
	if c.Physics.BallSpeed <= 0 || c.Physics.PaddleSpeed <= 0 || c.Physics.CPUSpeed <= 0 {
		return invalid("pong speeds must be positive")
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		return invalid("physics.max_ball_speed (%v) is below ball_speed (%v)", c.Physics.MaxBallSpeed, c.Physics.BallSpeed)
	}
	if c.Paddles.Height <= 0 || c.Paddles.Width <= 0 {
		return invalid("paddle size must be positive")
	}
	if c.Gameplay.WinScore <= 0 {
		return invalid("gameplay.win_score must be positive, got %d", c.Gameplay.WinScore)
	}
	return nil
}
