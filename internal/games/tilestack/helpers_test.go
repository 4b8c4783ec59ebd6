package tilestack

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tilestack/internal/config"
)

func testCatalog(tb testing.TB) Catalog {
	tb.Helper()
	cat, err := CatalogFromConfig(config.DefaultTileStackConfig().Icons)
	if err != nil {
		tb.Fatalf("default catalog: %v", err)
	}
	return cat
}

// testEnv returns the default rules with the given settle delay and a seeded RNG.
func testEnv(catalog Catalog, settle int) Env {
	rules := DefaultRules()
	rules.SettleTicks = settle
	return Env{Rules: rules, Catalog: catalog, RNG: rand.New(rand.NewSource(7))}
}

// flatScene lays out one tile per icon side by side, so nothing overlaps.
func flatScene(rules Rules, icons ...IconID) Scene {
	scene := make(Scene, len(icons))
	for i, icon := range icons {
		scene[i] = Tile{
			ID:     TileID(i + 1),
			Icon:   icon,
			X:      i * rules.CellSize,
			Y:      0,
			W:      rules.TileSize,
			H:      rules.TileSize,
			Status: StatusAvailable,
		}
	}
	Recompute(scene, InsertionOrder)
	return scene
}

// sessionWith builds an idle session at level over a hand-made scene.
func sessionWith(env Env, level int, scene Scene) Session {
	return Session{
		Level:    level,
		MaxLevel: env.Rules.MaxLevel,
		Scene:    scene,
		Queue:    NewQueue(env.Rules.Capacity),
		Status:   SessionIdle,
	}
}

// clickAll applies one click per tile ID and collects the events.
func clickAll(s Session, env Env, ids ...TileID) (Session, []Event) {
	var all []Event
	for _, id := range ids {
		var events []Event
		s, events = Apply(s, Click(id), env)
		all = append(all, events...)
	}
	return s, all
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
