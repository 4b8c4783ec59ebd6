// tilestack is a triple-match tile stacking puzzle for the terminal.
//
// Usage:
//
//	tilestack play           - Play, starting at the configured level
//	tilestack menu           - Start menu with level select and scores
//	tilestack levels         - Show what every level deals
//	tilestack scores         - Show high scores
//	tilestack serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--db <path>          - Set database path (default: ~/.tilestack/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Write game events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilestack",
	Short: "Tile Stack - a triple-match puzzle in your terminal",
	Long: `Tile Stack deals a pile of overlapping tiles. Take uncovered tiles into
a queue of seven; three equal tiles in the queue clear each other. Clear the
pile to reach the next level, fill the queue and the game is over.

Available commands:
  play     - Play directly
  menu     - Interactive menu with level select
  levels   - Show what every level deals
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tilestack play
  tilestack play --level 4 --difficulty hard
  tilestack menu
  tilestack serve --ssh :2222
  tilestack scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilestack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)

	// main prints errors once; usage is only shown for flag errors
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SilenceUsage = true
	}
}
