package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withFlags(t *testing.T, difficulty string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tilestack.yaml")
	data := []byte("levels:\n  start_level: 1\n  max_level: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = path, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
	})
}

func TestLoadConfigLevels(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		level      int
		wantStart  int
		wantMax    int
	}{
		{"default", "", 0, 1, 10},
		{"level flag", "", 4, 4, 10},
		{"level clamped", "normal", 42, 10, 10},
		{"hard start", "hard", 0, 3, 10},
		{"level beats hard start", "hard", 6, 6, 10},
		{"level beats easy start", "easy", 5, 5, 10},
		{"fixed pins start", "fixed", 0, 1, 1},
		{"fixed pins chosen level", "fixed", 7, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t, tc.difficulty)

			cfg, err := loadConfig(tc.level)
			if err != nil {
				t.Fatalf("loadConfig(%d) failed: %v", tc.level, err)
			}
			if cfg.Levels.StartLevel != tc.wantStart || cfg.Levels.MaxLevel != tc.wantMax {
				t.Errorf("levels = %d..%d, expected %d..%d",
					cfg.Levels.StartLevel, cfg.Levels.MaxLevel, tc.wantStart, tc.wantMax)
			}
		})
	}
}

func TestLoadConfigBadDifficulty(t *testing.T) {
	withFlags(t, "impossible")

	if _, err := loadConfig(0); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestLoadConfigHardCosts(t *testing.T) {
	withFlags(t, "")
	normal, err := loadConfig(0)
	if err != nil {
		t.Fatal(err)
	}

	withFlags(t, "hard")
	hard, err := loadConfig(0)
	if err != nil {
		t.Fatal(err)
	}

	if hard.Scoring.PopCost != 2*normal.Scoring.PopCost || hard.Scoring.WashCost != 2*normal.Scoring.WashCost {
		t.Errorf("hard costs = %+v, expected double %+v", hard.Scoring, normal.Scoring)
	}
}
