package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

var (
	flagLevel string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified channel.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R/Enter     - Restart (after the round ends)
  B/Esc       - Back
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower pursuers and longer frighten windows
  normal - Defaults from the game config
  hard   - Faster pursuers and shorter frighten windows
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pacman
  arcade play pacman --level maze
  arcade play pacman --level ./my-maze.txt --watch
  arcade play pong --difficulty hard
  arcade play pacman --config ./my-pacman.yaml`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{tuiAnnotation: ""},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Maze level: built-in name or path to a level file")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file when it changes")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	var opts []tui.Option
	if flagLevel != "" || flagWatch {
		if gameID != "pacman" {
			return errors.New("--level and --watch only apply to pacman")
		}
		pacman.SetLevel(flagLevel)
	}
	if flagWatch {
		if flagLevel == "" || slices.Contains(pacman.EmbeddedLevels(), flagLevel) {
			return errors.New("--watch needs --level to point at a level file")
		}
		path := flagLevel
		opts = append(opts, tui.WithLevelWatch(path, func() registry.Game {
			return pacman.NewWithSource(path)
		}))
	}
	applyConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// A missing database only costs persistence
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return err
	}
	return nil
}
