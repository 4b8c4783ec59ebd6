// Package config provides YAML-based game configuration loading and
// difficulty presets for the tile stack puzzle.
package config

import (
	"errors"
	"fmt"
)

// TileStackConfig contains all configuration for the tile stack game.
type TileStackConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Queue   QueueConfig   `yaml:"queue"`
	Levels  LevelsConfig  `yaml:"levels"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Icons   []IconConfig  `yaml:"icons"`
}

// BoardConfig defines scene geometry and density.
type BoardConfig struct {
	CellSize  int      `yaml:"cell_size"`  // Grid cell size in board units
	TileSize  int      `yaml:"tile_size"`  // Tile edge length in board units
	Ranges    [][2]int `yaml:"ranges"`     // [low, high) cell bounds per density tier
	Offsets   []int    `yaml:"offsets"`    // Jitter pool, sliced to 1+level entries
	ReturnRow int      `yaml:"return_row"` // Grid row where popped tiles are put back
}

// QueueConfig defines the staging queue.
type QueueConfig struct {
	Capacity int `yaml:"capacity"` // Reaching this length loses the game
}

// LevelsConfig defines level progression bounds.
type LevelsConfig struct {
	StartLevel int `yaml:"start_level"`
	MaxLevel   int `yaml:"max_level"`
}

// ScoringConfig defines score deltas.
type ScoringConfig struct {
	Match    int `yaml:"match"`     // Awarded per resolved triple
	PopCost  int `yaml:"pop_cost"`  // Deducted per pop
	UndoCost int `yaml:"undo_cost"` // Deducted per undo
	WashCost int `yaml:"wash_cost"` // Deducted per wash
}

// TimingConfig defines the settle barrier.
type TimingConfig struct {
	SettleTicks int `yaml:"settle_ticks"` // Ticks a match stays in flight; 0 resolves instantly
}

// IconConfig defines one icon kind of the catalog.
type IconConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c TileStackConfig) Validate() error {
	var errs []error

	if c.Board.CellSize <= 0 || c.Board.TileSize <= 0 {
		errs = append(errs, errors.New("board: cell_size and tile_size must be positive"))
	}
	if len(c.Board.Ranges) == 0 {
		errs = append(errs, errors.New("board: ranges must not be empty"))
	}
	for i, r := range c.Board.Ranges {
		if r[0] < 0 || r[1] <= r[0] {
			errs = append(errs, fmt.Errorf("board: range %d [%d, %d) is empty", i, r[0], r[1]))
		}
	}
	if len(c.Board.Offsets) == 0 {
		errs = append(errs, errors.New("board: offsets must not be empty"))
	}
	if c.Queue.Capacity < 3 {
		errs = append(errs, fmt.Errorf("queue: capacity %d cannot hold a triple", c.Queue.Capacity))
	}
	if c.Levels.MaxLevel < 1 {
		errs = append(errs, fmt.Errorf("levels: max_level %d must be at least 1", c.Levels.MaxLevel))
	}
	if c.Levels.StartLevel < 1 || c.Levels.StartLevel > c.Levels.MaxLevel {
		errs = append(errs, fmt.Errorf("levels: start_level %d outside [1, %d]", c.Levels.StartLevel, c.Levels.MaxLevel))
	}
	if c.Timing.SettleTicks < 0 {
		errs = append(errs, errors.New("timing: settle_ticks must not be negative"))
	}
	if len(c.Icons) == 0 {
		errs = append(errs, errors.New("icons: catalog must not be empty"))
	}
	for i, icon := range c.Icons {
		if len([]rune(icon.Glyph)) != 1 {
			errs = append(errs, fmt.Errorf("icons: %q (#%d) glyph must be a single character", icon.Name, i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tilestack config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
