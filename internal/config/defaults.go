package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPacmanConfig returns the hard-coded maze pursuit configuration.
// It mirrors defaults/pacman.yaml and is used when the embedded file fails to parse.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		World: PacmanWorld{
			Level:        "classic",
			TileSize:     25,
			Lives:        3,
			PickupRadius: 0.16,
			PotentRadius: 0.3,
		},
		Player: PacmanPlayer{
			Speed:  4.8, // 2 units per tick at 60fps
			Radius: 0.42,
		},
		Pursuers: PacmanPursuers{
			Speed:         3.6, // 1.5 units per tick at 60fps
			Radius:        0.42,
			RetreatFactor: 0.5,
			Lookahead:     4,
			PivotAhead:    2,
			ShyDistance:   8,
		},
		Timing: PacmanTiming{
			ReadyDelay:      2.0,
			DyingDelay:      1.5,
			RetreatDuration: 6.0,
			CaptureDuration: 3.0,
		},
		Scoring: PacmanScoring{
			Pickup:      10,
			Potent:      50,
			CaptureBase: 200,
			CaptureCap:  1600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
			},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    20,
			PaddleSpeed:  40,
			CPUSpeed:     28,
			MaxBallSpeed: 70,
			SpeedUp:      1.1,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   3,
			ServeDelay: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
