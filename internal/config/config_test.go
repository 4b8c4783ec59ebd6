package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TileStackConfig
	if err := yaml.Unmarshal(defaultTileStackYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultTileStackConfig()) {
		t.Errorf("embedded YAML and DefaultTileStackConfig() drifted apart:\n%+v\n%+v", cfg, DefaultTileStackConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadTileStackCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("levels:\n  start_level: 2\n  max_level: 4\nqueue:\n  capacity: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTileStack(path)
	if err != nil {
		t.Fatalf("LoadTileStack() failed: %v", err)
	}

	if cfg.Levels.StartLevel != 2 || cfg.Levels.MaxLevel != 4 || cfg.Queue.Capacity != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched sections keep their defaults
	if cfg.Board.CellSize != 100 || len(cfg.Icons) != 20 {
		t.Errorf("defaults lost for missing sections: %+v", cfg.Board)
	}
}

func TestLoadTileStackCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTileStack(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	os.WriteFile(broken, []byte("queue: [not, a, map"), 0o600)
	if _, err := LoadTileStack(broken); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("queue:\n  capacity: 2\n"), 0o600)
	_, err := LoadTileStack(invalid)
	if err == nil || !strings.Contains(err.Error(), "capacity") {
		t.Errorf("expected capacity validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TileStackConfig)
		field  string
	}{
		{"empty range", func(c *TileStackConfig) { c.Board.Ranges[1] = [2]int{3, 3} }, "range 1"},
		{"no offsets", func(c *TileStackConfig) { c.Board.Offsets = nil }, "offsets"},
		{"zero max level", func(c *TileStackConfig) { c.Levels.MaxLevel = 0 }, "max_level"},
		{"start above max", func(c *TileStackConfig) { c.Levels.StartLevel = 11 }, "start_level"},
		{"wide glyph", func(c *TileStackConfig) { c.Icons[0].Glyph = "SH" }, "glyph"},
		{"no icons", func(c *TileStackConfig) { c.Icons = nil }, "catalog"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTileStackConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyTileStackPreset(t *testing.T) {
	easy := DefaultTileStackConfig()
	ApplyTileStackPreset(&easy, DifficultyEasy)
	if easy.Scoring.WashCost != 0 || easy.Levels.StartLevel != 1 {
		t.Errorf("easy preset: %+v %+v", easy.Scoring, easy.Levels)
	}

	hard := DefaultTileStackConfig()
	ApplyTileStackPreset(&hard, DifficultyHard)
	if hard.Levels.StartLevel != 3 || hard.Scoring.PopCost != 2 || hard.Scoring.WashCost != 2 {
		t.Errorf("hard preset: %+v %+v", hard.Scoring, hard.Levels)
	}

	fixed := DefaultTileStackConfig().WithStartLevel(4)
	ApplyTileStackPreset(&fixed, DifficultyFixed)
	if fixed.Levels.MaxLevel != 4 || !IsFixedPreset(DifficultyFixed) {
		t.Errorf("fixed preset should pin max level, got %+v", fixed.Levels)
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset produced invalid config: %v", err)
	}
}

func TestWithStartLevelClamps(t *testing.T) {
	cfg := DefaultTileStackConfig()

	if got := cfg.WithStartLevel(0).Levels.StartLevel; got != 1 {
		t.Errorf("WithStartLevel(0) = %d, expected unchanged 1", got)
	}
	if got := cfg.WithStartLevel(99).Levels.StartLevel; got != cfg.Levels.MaxLevel {
		t.Errorf("WithStartLevel(99) = %d, expected %d", got, cfg.Levels.MaxLevel)
	}
}
