package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing at the configured start level.

Controls:
  Arrows/WASD/HJKL - Move the cursor between free tiles
  Tab              - Next free tile
  Enter/Space      - Take the tile under the cursor (mouse click works too)
  X                - Send the oldest queued tile back to the board
  U                - Undo: send the newest queued tile back
  F                - Wash: reshuffle the board
  [ / ]            - Previous / next level (costs points)
  R                - Restart from the start level
  B/Esc            - Back
  Q/Ctrl+C         - Quit
  ?                - Toggle full help

Difficulty options:
  easy   - Start at level 1, washing is free
  normal - Configured rules
  hard   - Start at level 3, pop, undo and wash cost double
  fixed  - Play only the start level

Examples:
  tilestack play
  tilestack play --level 5
  tilestack play --difficulty easy
  tilestack play --config ./my-tiles.yaml --log ./tilestack.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start at (0 = configured start level)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagLevel)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Open score storage; continue without it if that fails
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := tui.NewGame(cfg, 0, store, logger)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := tui.Run(ctx, game, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
