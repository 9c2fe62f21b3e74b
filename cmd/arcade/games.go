package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
	"github.com/vovakirdan/maze-arcade/internal/games/pong"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// applyDifficulty checks the preset name and hands it to every configurable game.
func applyDifficulty(preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	pacman.SetDifficultyPreset(preset)
	pong.SetDifficultyPreset(preset)
	return nil
}

// applyConfigPath points the given game at a custom config file.
// Other games keep the standard search path.
func applyConfigPath(gameID, path string) {
	switch gameID {
	case "pacman":
		pacman.SetConfigPath(path)
	case "pong":
		pong.SetConfigPath(path)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
