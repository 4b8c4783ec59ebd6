package tilestack

import "github.com/kamstrup/intmap"

// Queue is the bounded staging area for clicked tiles.
// Tiles are kept in click order; PopOldest takes from the front and
// PopNewest from the back.
type Queue struct {
	Tiles    []Tile `json:"tiles"`
	Capacity int    `json:"capacity"`
}

// NewQueue creates an empty queue with the given capacity.
func NewQueue(capacity int) Queue {
	return Queue{Tiles: make([]Tile, 0, capacity), Capacity: capacity}
}

// Clone returns an independent copy of the queue.
func (q Queue) Clone() Queue {
	tiles := make([]Tile, len(q.Tiles), max(q.Capacity, len(q.Tiles)))
	copy(tiles, q.Tiles)
	return Queue{Tiles: tiles, Capacity: q.Capacity}
}

// Len returns the number of queued tiles.
func (q Queue) Len() int {
	return len(q.Tiles)
}

// Full reports whether no further tile can be pushed.
func (q Queue) Full() bool {
	return len(q.Tiles) >= q.Capacity
}

// Count returns how many queued tiles show the given icon.
func (q Queue) Count(icon IconID) int {
	n := 0
	for _, t := range q.Tiles {
		if t.Icon == icon {
			n++
		}
	}
	return n
}

// Push appends a tile in queued state. It returns false if the queue is full.
func (q *Queue) Push(t Tile) bool {
	if q.Full() {
		return false
	}
	t.Status = StatusQueued
	t.Occluded = false
	q.Tiles = append(q.Tiles, t)
	return true
}

// PopOldest removes and returns the first queued tile.
func (q *Queue) PopOldest() (Tile, bool) {
	if len(q.Tiles) == 0 {
		return Tile{}, false
	}
	t := q.Tiles[0]
	q.Tiles = append(q.Tiles[:0], q.Tiles[1:]...)
	return t, true
}

// PopNewest removes and returns the last queued tile.
func (q *Queue) PopNewest() (Tile, bool) {
	n := len(q.Tiles)
	if n == 0 {
		return Tile{}, false
	}
	t := q.Tiles[n-1]
	q.Tiles = q.Tiles[:n-1]
	return t, true
}

// TryResolveMatch removes every tile with the given icon if there are
// exactly MatchSize of them, and returns the removed tiles marked as
// matched. Any other count leaves the queue untouched and returns nil.
// Matching always looks at the whole queue in click order, never at the
// display grouping.
func (q *Queue) TryResolveMatch(icon IconID) []Tile {
	if q.Count(icon) != MatchSize {
		return nil
	}

	removed := make([]Tile, 0, MatchSize)
	kept := q.Tiles[:0]
	for _, t := range q.Tiles {
		if t.Icon == icon {
			t.Status = StatusMatched
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	q.Tiles = kept
	return removed
}

// DisplayOrder returns, for every queue position, the slot it is shown in.
// Tiles are grouped by icon, groups ordered by first appearance, and click
// order is kept inside a group. This only affects presentation.
func (q Queue) DisplayOrder() []int {
	buckets := intmap.New[IconID, int](len(q.Tiles))
	var groups [][]int

	for i, t := range q.Tiles {
		b, ok := buckets.Get(t.Icon)
		if !ok {
			b = len(groups)
			buckets.Put(t.Icon, b)
			groups = append(groups, nil)
		}
		groups[b] = append(groups[b], i)
	}

	order := make([]int, len(q.Tiles))
	slot := 0
	for _, g := range groups {
		for _, i := range g {
			order[i] = slot
			slot++
		}
	}
	return order
}

// Grouped returns the queued tiles in display order.
func (q Queue) Grouped() []Tile {
	out := make([]Tile, len(q.Tiles))
	for i, slot := range q.DisplayOrder() {
		out[slot] = q.Tiles[i]
	}
	return out
}
