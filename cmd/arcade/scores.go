package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/registry"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var flagRounds int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and round results",
	Long: `Display the top 10 high scores and the latest rounds for a game.
Without a game, opens the interactive scoreboard.

Examples:
  arcade scores
  arcade scores pacman
  arcade scores pong --rounds 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
		cfg := runtimeConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
	}

	return printRounds(cmd, store, gameID)
}

func printRounds(cmd *cobra.Command, store *storage.Store, gameID string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.Wins+stats.Losses == 0 {
		return nil
	}

	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rounds won %d  |  lost %d\n", stats.Wins, stats.Losses)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-7s  %-10s  %-8s  %s\n", "Outcome", "Score", "Ticks", "Date")
	fmt.Fprintf(out, "  %-7s  %-10s  %-8s  %s\n", "-------", "-----", "-----", "----")
	for _, r := range rounds {
		fmt.Fprintf(out, "  %-7s  %-10d  %-8d  %s\n",
			r.Outcome, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
