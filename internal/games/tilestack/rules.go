package tilestack

import "github.com/vovakirdan/tilestack/internal/config"

// Rules holds every tunable of the engine.
type Rules struct {
	CellSize  int
	TileSize  int
	Ranges    [][2]int // [low, high) cell bounds per density tier
	Offsets   []int    // Jitter pool
	ReturnRow int      // Grid row for tiles sent back by pop/undo

	Capacity   int // Reaching this queue length loses
	StartLevel int
	MaxLevel   int

	MatchScore int
	PopCost    int
	UndoCost   int
	WashCost   int

	SettleTicks int // 0 resolves matches inside the click
}

// TilesPerIcon is how many tiles each pooled icon contributes.
const TilesPerIcon = 6

// MatchSize is how many equal icons clear each other.
const MatchSize = 3

// returnSlots is how many return positions exist on the return row before wrapping.
const returnSlots = 8

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTileStackConfig())
}

// RulesFromConfig converts a loaded configuration into engine rules.
func RulesFromConfig(cfg config.TileStackConfig) Rules {
	return Rules{
		CellSize:    cfg.Board.CellSize,
		TileSize:    cfg.Board.TileSize,
		Ranges:      cfg.Board.Ranges,
		Offsets:     cfg.Board.Offsets,
		ReturnRow:   cfg.Board.ReturnRow,
		Capacity:    cfg.Queue.Capacity,
		StartLevel:  cfg.Levels.StartLevel,
		MaxLevel:    cfg.Levels.MaxLevel,
		MatchScore:  cfg.Scoring.Match,
		PopCost:     cfg.Scoring.PopCost,
		UndoCost:    cfg.Scoring.UndoCost,
		WashCost:    cfg.Scoring.WashCost,
		SettleTicks: cfg.Timing.SettleTicks,
	}
}
