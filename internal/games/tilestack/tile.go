// Package tilestack implements a triple-match tile stacking puzzle:
// tiles are piled on a board, the player moves uncovered tiles into a
// small staging queue, and three equal icons in the queue clear each other.
package tilestack

import "github.com/vovakirdan/tilestack/internal/core"

// TileID identifies a tile within one scene.
type TileID int

// IconID identifies an icon kind as an index into the Catalog.
type IconID int

// TileStatus is where a tile currently lives.
type TileStatus uint8

const (
	StatusAvailable TileStatus = iota // On the board
	StatusQueued                      // In the staging queue
	StatusMatched                     // Cleared by a triple match
)

// String returns a human-readable name for the status.
func (s TileStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusQueued:
		return "queued"
	case StatusMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Tile is a single placed game piece.
// Tiles are square; W and H are both the rules' tile size.
type Tile struct {
	ID       TileID     `json:"id"`
	Icon     IconID     `json:"icon"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	W        int        `json:"w"`
	H        int        `json:"h"`
	Status   TileStatus `json:"status"`
	Occluded bool       `json:"occluded"`
}

// Rect returns the tile's bounding box in board units.
func (t Tile) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.W, t.H)
}

// Clickable reports whether the tile can be moved into the queue.
func (t Tile) Clickable() bool {
	return t.Status == StatusAvailable && !t.Occluded
}

// Scene is the ordered pile of tiles for one level.
// Order is stacking order: see StackOrder.
type Scene []Tile

// Clone returns an independent copy of the scene.
func (s Scene) Clone() Scene {
	if s == nil {
		return nil
	}
	out := make(Scene, len(s))
	copy(out, s)
	return out
}

// Index returns the position of the tile with the given ID, or -1.
func (s Scene) Index(id TileID) int {
	// IDs are assigned sequentially from 1, so the fast path is direct
	if i := int(id) - 1; i >= 0 && i < len(s) && s[i].ID == id {
		return i
	}
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// Remaining counts tiles that are not matched yet.
func (s Scene) Remaining() int {
	n := 0
	for i := range s {
		if s[i].Status != StatusMatched {
			n++
		}
	}
	return n
}

// Cleared reports whether every tile has been matched.
func (s Scene) Cleared() bool {
	return s.Remaining() == 0
}
