package config

import (
	_ "embed"
)

//go:embed defaults/tilestack.yaml
var defaultTileStackYAML []byte

// DefaultTileStackConfig returns the default tile stack configuration.
// It mirrors defaults/tilestack.yaml and is used if the embedded file cannot be parsed.
func DefaultTileStackConfig() TileStackConfig {
	return TileStackConfig{
		Board: BoardConfig{
			CellSize:  100,
			TileSize:  100,
			Ranges:    [][2]int{{2, 6}, {2, 6}, {1, 6}, {1, 7}, {0, 8}},
			Offsets:   []int{0, 25, -25, 50, -50},
			ReturnRow: 9,
		},
		Queue: QueueConfig{
			Capacity: 7,
		},
		Levels: LevelsConfig{
			StartLevel: 1,
			MaxLevel:   10,
		},
		Scoring: ScoringConfig{
			Match:    3,
			PopCost:  1,
			UndoCost: 1,
			WashCost: 1,
		},
		Timing: TimingConfig{
			SettleTicks: 9,
		},
		Icons: []IconConfig{
			{Name: "sheep", Glyph: "S", Color: "bright_white"},
			{Name: "carrot", Glyph: "C", Color: "orange"},
			{Name: "grass", Glyph: "G", Color: "green"},
			{Name: "bell", Glyph: "B", Color: "yellow"},
			{Name: "fire", Glyph: "F", Color: "red"},
			{Name: "water", Glyph: "W", Color: "blue"},
			{Name: "hay", Glyph: "H", Color: "bright_yellow"},
			{Name: "milk", Glyph: "M", Color: "white"},
			{Name: "apple", Glyph: "A", Color: "bright_red"},
			{Name: "corn", Glyph: "K", Color: "yellow"},
			{Name: "brush", Glyph: "R", Color: "magenta"},
			{Name: "gloves", Glyph: "L", Color: "cyan"},
			{Name: "pitchfork", Glyph: "P", Color: "gray"},
			{Name: "bucket", Glyph: "U", Color: "bright_blue"},
			{Name: "wool", Glyph: "O", Color: "bright_white"},
			{Name: "clover", Glyph: "V", Color: "bright_green"},
			{Name: "stool", Glyph: "T", Color: "orange"},
			{Name: "scissors", Glyph: "X", Color: "bright_cyan"},
			{Name: "lantern", Glyph: "N", Color: "bright_yellow"},
			{Name: "ribbon", Glyph: "Y", Color: "bright_magenta"},
		},
	}
}
