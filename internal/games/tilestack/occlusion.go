package tilestack

import "github.com/zyedidia/generic/mapset"

// StackOrder reports whether the tile at scene index upper lies on top of
// the tile at scene index lower. Occlusion only looks at pairs for which
// it returns true.
type StackOrder func(lower, upper int) bool

// InsertionOrder treats later-inserted tiles as lying on top.
// This is the order the generator produces and the default everywhere.
func InsertionOrder(lower, upper int) bool {
	return upper > lower
}

// ReverseOrder treats earlier-inserted tiles as lying on top.
func ReverseOrder(lower, upper int) bool {
	return upper < lower
}

// Recompute refreshes the Occluded flag of every tile in place.
// An available tile is occluded when any available tile above it (per order)
// overlaps its box. Queued and matched tiles are out of the pile: they are
// never occluded and never occlude.
func Recompute(scene Scene, order StackOrder) {
	for i := range scene {
		scene[i].Occluded = false
		if scene[i].Status != StatusAvailable {
			continue
		}
		box := scene[i].Rect()
		for j := range scene {
			if j == i || scene[j].Status != StatusAvailable || !order(i, j) {
				continue
			}
			if box.Intersects(scene[j].Rect()) {
				scene[i].Occluded = true
				break
			}
		}
	}
}

// ClickableSet returns the IDs of every tile that can be clicked right now.
func ClickableSet(scene Scene) mapset.Set[TileID] {
	set := mapset.New[TileID]()
	for i := range scene {
		if scene[i].Clickable() {
			set.Put(scene[i].ID)
		}
	}
	return set
}

// IconsLeft returns the icon kinds that still have tiles on the board or in the queue.
func IconsLeft(scene Scene) mapset.Set[IconID] {
	set := mapset.New[IconID]()
	for i := range scene {
		if scene[i].Status != StatusMatched {
			set.Put(scene[i].Icon)
		}
	}
	return set
}
