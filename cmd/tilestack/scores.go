package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/platform/tui"
	"github.com/vovakirdan/tilestack/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games, highest score first.
Ties go to the game that reached the higher level, then to the faster one.

Examples:
  tilestack scores
  tilestack scores --limit 25
  tilestack scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(tilestack.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(tilestack.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Tile Stack")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tilestack play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %-6s  %s\n",
			i+1, entry.Score, entry.Level, result,
			tui.FormatElapsed(entry.ElapsedMs), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Stats are a footer; the table is already out
	stats, err := store.GetGameStats(tilestack.GameID)
	if err != nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Best level: %d  |  Games: %d  |  Wins: %d\n",
		stats.HighScore, stats.BestLevel, stats.GamesCount, stats.Wins)
	if stats.BestWinMs > 0 {
		fmt.Printf("Fastest win: %s\n", tui.FormatElapsed(stats.BestWinMs))
	}
	return nil
}
