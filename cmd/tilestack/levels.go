package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/games/tilestack"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show what every level deals",
	Long: `Lists every level with the icon kinds, tile count and placement density
it deals under the current config and difficulty.

Examples:
  tilestack levels
  tilestack levels --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(0)
	if err != nil {
		return err
	}

	catalog, err := tilestack.CatalogFromConfig(cfg.Icons)
	if err != nil {
		return err
	}
	rules := tilestack.RulesFromConfig(cfg)

	fmt.Printf("Levels - %d icon kinds, queue of %d\n", len(catalog), rules.Capacity)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %5s  %5s  %5s  %-7s  %s\n", "Level", "Icons", "Pool", "Tiles", "Grid", "Offsets")
	fmt.Printf("  %-5s  %5s  %5s  %5s  %-7s  %s\n", "-----", "-----", "----", "-----", "----", "-------")

	for level := cfg.Levels.StartLevel; level <= cfg.Levels.MaxLevel; level++ {
		info := tilestack.DescribeLevel(level, catalog, rules)
		grid := fmt.Sprintf("%d..%d", info.Low, info.High)
		fmt.Printf("  %-5d  %5d  %5d  %5d  %-7s  %d\n",
			info.Level, info.Icons, info.Pool, info.Tiles, grid, info.Offsets)
	}

	fmt.Println()
	fmt.Println("Run 'tilestack play --level <n>' to start at a level.")
	return nil
}
