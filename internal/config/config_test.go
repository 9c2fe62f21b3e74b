package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	pacman, err := decode(GetDefaultYAML("pacman"), func() PacmanConfig { return PacmanConfig{} })
	if err != nil {
		t.Fatalf("decode pacman.yaml: %v", err)
	}
	if !reflect.DeepEqual(pacman, DefaultPacmanConfig()) {
		t.Errorf("pacman.yaml = %+v, expected %+v", pacman, DefaultPacmanConfig())
	}

	pong, err := decode(GetDefaultYAML("pong"), func() PongConfig { return PongConfig{} })
	if err != nil {
		t.Fatalf("decode pong.yaml: %v", err)
	}
	if !reflect.DeepEqual(pong, DefaultPongConfig()) {
		t.Errorf("pong.yaml = %+v, expected %+v", pong, DefaultPongConfig())
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) should be nil")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultPacmanConfig().Validate(60); err != nil {
		t.Errorf("DefaultPacmanConfig().Validate(60) = %v", err)
	}
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("DefaultPongConfig().Validate() = %v", err)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadPacmanPartialOverride(t *testing.T) {
	path := writeFile(t, "pacman.yaml", "world:\n  lives: 7\nscoring:\n  pickup: 25\n")

	cfg, err := LoadPacman(path, 60)
	if err != nil {
		t.Fatalf("LoadPacman error: %v", err)
	}
	if cfg.World.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.World.Lives)
	}
	if cfg.Scoring.Pickup != 25 {
		t.Errorf("Pickup = %d, expected 25", cfg.Scoring.Pickup)
	}
	// Untouched values keep their defaults.
	if cfg.Player.Speed != DefaultPacmanConfig().Player.Speed {
		t.Errorf("Player.Speed = %v, expected default", cfg.Player.Speed)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writeFile(t, "pong.yaml", "")

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("LoadPong(empty) = %+v, expected defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", "world:\n  tiles: 3\n", false},
		{"bad syntax", "world: [\n", false},
		{"too fast", "player:\n  speed: 45\n", true},
		{"zero tile size", "world:\n  tile_size: 0\n", true},
		{"radius above one tile", "pursuers:\n  radius: 1.5\n", true},
		{"cap below base", "scoring:\n  capture_cap: 100\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "pacman.yaml", tt.body)
			_, err := LoadPacman(path, 60)
			if err == nil {
				t.Fatal("LoadPacman should fail")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadPacman(filepath.Join(t.TempDir(), "nope.yaml"), 60)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPacman(missing) error = %v, expected os.ErrNotExist", err)
	}
}

func TestValidateTickRate(t *testing.T) {
	cfg := DefaultPacmanConfig()
	// 4.8 tiles/s is fine at 60 ticks but skips tile centres at 8.
	if err := cfg.Validate(8); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate(8) = %v, expected ErrInvalidConfig", err)
	}
	if err := cfg.Validate(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate(0) = %v, expected ErrInvalidConfig", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	base := DefaultPacmanConfig()

	easy := DefaultPacmanConfig()
	ApplyPacmanPreset(&easy, DifficultyEasy)
	if easy.World.Lives != 5 || easy.Timing.RetreatDuration <= base.Timing.RetreatDuration {
		t.Errorf("easy preset: lives %d retreat %v", easy.World.Lives, easy.Timing.RetreatDuration)
	}

	hard := DefaultPacmanConfig()
	ApplyPacmanPreset(&hard, DifficultyHard)
	if hard.World.Lives != 2 || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: lives %d initial level %v", hard.World.Lives, hard.Difficulty.InitialLevel)
	}
	if err := hard.Validate(60); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultPacmanConfig()
	ApplyPacmanPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
