package config

import "github.com/vovakirdan/tilestack/internal/core"

// hardStartLevel is where the hard preset begins.
const hardStartLevel = 3

// ApplyTileStackPreset modifies the config based on a difficulty preset.
func ApplyTileStackPreset(cfg *TileStackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Levels.StartLevel = 1
		cfg.Scoring.WashCost = 0
	case DifficultyHard:
		cfg.Levels.StartLevel = core.Clamp(hardStartLevel, 1, cfg.Levels.MaxLevel)
		cfg.Scoring.PopCost *= 2
		cfg.Scoring.UndoCost *= 2
		cfg.Scoring.WashCost *= 2
	case DifficultyFixed:
		// No progression: the start level is also the last one
		cfg.Levels.MaxLevel = cfg.Levels.StartLevel
	}
}

// WithStartLevel overrides the start level, clamped to the configured range.
// Zero keeps the configured value.
func (c TileStackConfig) WithStartLevel(level int) TileStackConfig {
	if level > 0 {
		c.Levels.StartLevel = core.Clamp(level, 1, c.Levels.MaxLevel)
	}
	return c
}
