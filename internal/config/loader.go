package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// load resolves the configuration for gameID.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> hard-coded.
// Files overlay the hard-coded defaults, so a partial file only overrides what it names.
// A custom path that cannot be read or parsed is an error; broken files on the
// search path are skipped with a warning.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			log.Warn("ignoring broken config file", "path", path, "err", err)
			continue
		}
		return cfg, nil
	}

	cfg, err := decode(GetDefaultYAML(gameID), defaults)
	if err != nil {
		return defaults(), nil
	}
	return cfg, nil
}

// decode unmarshals data over a fresh copy of the defaults. Unknown keys are rejected.
func decode[T any](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadPacman loads and validates the maze pursuit configuration for the given tick rate.
func LoadPacman(customPath string, tickRate int) (PacmanConfig, error) {
	cfg, err := load("pacman", customPath, DefaultPacmanConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(tickRate); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadPong loads and validates Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := load("pong", customPath, DefaultPongConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDifficultyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.World.Lives = 5
		cfg.Timing.RetreatDuration *= 1.5
	case DifficultyHard:
		cfg.World.Lives = 2
		cfg.Timing.RetreatDuration *= 0.6
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Physics.CPUSpeed *= 0.8
	case DifficultyHard:
		cfg.Physics.CPUSpeed *= 1.25
	}
}
