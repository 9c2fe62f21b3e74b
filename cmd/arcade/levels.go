package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
)

var flagShowLevel bool

var levelsCmd = &cobra.Command{
	Use:   "levels [name|path]",
	Short: "List built-in maze levels",
	Long: `Without arguments, lists the built-in maze levels.
With a level name or file path, validates it and prints its layout.

Level files use one character per tile:
  #  wall
  .  pickup
  o  potent pickup
  P  player start
  G  pursuer start

Examples:
  arcade levels
  arcade levels classic
  arcade levels ./my-maze.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowLevel, "show", true, "Print the layout of a single level")
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		l, err := pacman.ResolveLevel(args[0])
		if err != nil {
			return err
		}
		printLevelSummary(cmd, l)
		if flagShowLevel {
			fmt.Fprintln(out)
			fmt.Fprint(out, l.String())
		}
		return nil
	}

	fmt.Fprintln(out, "Built-in levels:")
	fmt.Fprintln(out)
	for _, name := range pacman.EmbeddedLevels() {
		l, err := pacman.LoadEmbeddedLevel(name)
		if err != nil {
			return err
		}
		printLevelSummary(cmd, l)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play pacman --level <name>' to play one.")
	return nil
}

func printLevelSummary(cmd *cobra.Command, l *pacman.Level) {
	potent := 0
	for _, p := range l.Pickups {
		if p.Potent {
			potent++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %dx%d  pursuers %d  pickups %d (%d potent)\n",
		l.Name, l.Cols, l.Rows, len(l.Pursuers), len(l.Pickups), potent)
}
