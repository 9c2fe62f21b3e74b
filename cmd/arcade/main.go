// arcade is a terminal arcade built around a maze pursuit game.
//
// Usage:
//
//	arcade list              - List available channels
//	arcade play <game>       - Play a channel directly
//	arcade menu              - Pick channels interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores and round results
//	arcade levels            - List built-in maze levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom YAML config for the played game
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/maze-arcade/internal/games/pacman"
	_ "github.com/vovakirdan/maze-arcade/internal/games/pong"
	_ "github.com/vovakirdan/maze-arcade/internal/games/sandbox"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// tuiAnnotation marks commands that take over the terminal.
const tuiAnnotation = "tui"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Maze Arcade - chase and be chased in your terminal",
	Long: `Maze Arcade is a terminal arcade. Its main channel is a maze pursuit
game: clear the pickups while four pursuers plan their way towards you.

Available commands:
  list     - Show all available channels
  play     - Play a specific channel directly
  menu     - Interactive channel picker
  serve    - Start SSH server for remote play
  scores   - View high scores and round results
  levels   - List built-in maze levels

Examples:
  arcade list
  arcade play pacman
  arcade play pacman --level ./my-maze.txt --watch
  arcade menu
  arcade serve --ssh :2222
  arcade scores pacman`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogging() },
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup validates global flags and configures logging for the command.
func setup(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if err := applyDifficulty(flagDifficulty); err != nil {
		return err
	}
	return setupLogging(flagLogLevel, flagLogFile, takesTerminal(cmd, args))
}

// takesTerminal reports whether cmd runs a full-screen program.
func takesTerminal(cmd *cobra.Command, args []string) bool {
	if _, ok := cmd.Annotations[tuiAnnotation]; ok {
		return true
	}
	return cmd == scoresCmd && len(args) == 0
}
