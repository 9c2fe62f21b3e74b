package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a channel picker",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a channel.
Press B or Esc inside a channel to come back; the channel freezes
until it is selected again, which starts a fresh round.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select channel
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Annotations: map[string]string{tuiAnnotation: ""},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return tui.RunSession(store, cfg)
}
