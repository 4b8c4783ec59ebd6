package tilestack

import "github.com/vovakirdan/tilestack/internal/core"

// RNG is the randomness the engine needs. *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Density tiers repeat every bandSize levels; each band may add up to
// maxBandExtra duplicated icons to the pool.
const (
	bandSize     = 5
	maxBandExtra = 10
)

// IconPool returns the icons used by a level, in catalog order.
// The base pool is the first 2*level icons. Every full band of five levels
// then appends a prefix of the pool to itself, so later levels repeat
// common icons instead of needing an ever larger catalog.
func IconPool(level, catalogSize int) []IconID {
	if level < 1 {
		level = 1
	}
	n := min(2*level, catalogSize)
	pool := make([]IconID, n)
	for i := range pool {
		pool[i] = IconID(i)
	}

	for compare := level; compare > 0; compare -= bandSize {
		extra := min(maxBandExtra, 2*(compare-bandSize))
		if extra <= 0 {
			continue
		}
		pool = append(pool, pool[:min(extra, len(pool))]...)
	}
	return pool
}

// Density returns the [low, high) grid bounds and the jitter offsets for a level.
func (r Rules) Density(level int) (low, high int, offsets []int) {
	tier := core.Clamp(level-1, 0, min(4, len(r.Ranges)-1))
	bounds := r.Ranges[tier]
	offsets = r.Offsets[:core.Clamp(1+level, 1, len(r.Offsets))]
	return bounds[0], bounds[1], offsets
}

// place rolls a random position for a tile using the level's density rule.
func (r Rules) place(level int, rng RNG) (x, y int) {
	low, high, offsets := r.Density(level)
	row := low + rng.Intn(high-low)
	col := low + rng.Intn(high-low)
	offset := offsets[rng.Intn(len(offsets))]
	return col*r.CellSize + offset, row*r.CellSize + offset
}

// Generate builds the scene for a level. Each pooled icon gets TilesPerIcon
// tiles at independently rolled positions; overlaps are expected. Tiles keep
// insertion order (pool order, then instance order) and are numbered from 1.
// The returned scene already has occlusion computed.
func Generate(level int, catalog Catalog, rules Rules, rng RNG) Scene {
	pool := IconPool(level, len(catalog))
	scene := make(Scene, 0, len(pool)*TilesPerIcon)

	for _, icon := range pool {
		for range TilesPerIcon {
			x, y := rules.place(level, rng)
			scene = append(scene, Tile{
				ID:     TileID(len(scene) + 1),
				Icon:   icon,
				X:      x,
				Y:      y,
				W:      rules.TileSize,
				H:      rules.TileSize,
				Status: StatusAvailable,
			})
		}
	}

	Recompute(scene, InsertionOrder)
	return scene
}

// LevelInfo summarizes what a level generates, for menus and the CLI.
type LevelInfo struct {
	Level   int
	Icons   int // Distinct icon kinds
	Pool    int // Pool entries including band duplicates
	Tiles   int
	Low     int
	High    int
	Offsets int
}

// DescribeLevel returns the LevelInfo of a level without generating it.
func DescribeLevel(level int, catalog Catalog, rules Rules) LevelInfo {
	pool := IconPool(level, len(catalog))
	low, high, offsets := rules.Density(level)
	return LevelInfo{
		Level:   level,
		Icons:   min(2*level, len(catalog)),
		Pool:    len(pool),
		Tiles:   len(pool) * TilesPerIcon,
		Low:     low,
		High:    high,
		Offsets: len(offsets),
	}
}
