package tilestack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queued(icons ...IconID) Queue {
	q := NewQueue(7)
	for i, icon := range icons {
		q.Push(Tile{ID: TileID(i + 1), Icon: icon})
	}
	return q
}

func TestQueuePushUntilFull(t *testing.T) {
	q := NewQueue(3)
	for i := range 3 {
		require.True(t, q.Push(Tile{ID: TileID(i + 1), Occluded: true}))
	}
	assert.True(t, q.Full())
	assert.False(t, q.Push(Tile{ID: 4}))
	assert.Equal(t, 3, q.Len())

	for _, tile := range q.Tiles {
		assert.Equal(t, StatusQueued, tile.Status)
		assert.False(t, tile.Occluded)
	}
}

func TestQueuePopEnds(t *testing.T) {
	q := queued(0, 1, 2)

	oldest, ok := q.PopOldest()
	require.True(t, ok)
	assert.Equal(t, TileID(1), oldest.ID)

	newest, ok := q.PopNewest()
	require.True(t, ok)
	assert.Equal(t, TileID(3), newest.ID)

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, TileID(2), q.Tiles[0].ID)

	q.PopOldest()
	_, ok = q.PopOldest()
	assert.False(t, ok)
	_, ok = q.PopNewest()
	assert.False(t, ok)
}

func TestTryResolveMatch(t *testing.T) {
	tests := []struct {
		name    string
		icons   []IconID
		icon    IconID
		removed int
		left    []IconID
	}{
		{"two is not enough", []IconID{4, 4, 1}, 4, 0, []IconID{4, 4, 1}},
		{"exactly three clear", []IconID{4, 1, 4, 2, 4}, 4, 3, []IconID{1, 2}},
		{"four never clear", []IconID{4, 4, 4, 4}, 4, 0, []IconID{4, 4, 4, 4}},
		{"other icon untouched", []IconID{4, 4, 4}, 1, 0, []IconID{4, 4, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := queued(tc.icons...)
			removed := q.TryResolveMatch(tc.icon)
			assert.Len(t, removed, tc.removed)
			for _, tile := range removed {
				assert.Equal(t, StatusMatched, tile.Status)
				assert.Equal(t, tc.icon, tile.Icon)
			}

			left := make([]IconID, 0, q.Len())
			for _, tile := range q.Tiles {
				left = append(left, tile.Icon)
			}
			assert.Equal(t, tc.left, left)
		})
	}
}

func TestDisplayOrderGroupsByFirstAppearance(t *testing.T) {
	q := queued(5, 2, 5, 9, 2)

	assert.Equal(t, []int{0, 2, 1, 4, 3}, q.DisplayOrder())

	grouped := q.Grouped()
	got := make([]TileID, len(grouped))
	for i, tile := range grouped {
		got[i] = tile.ID
	}
	assert.Equal(t, []TileID{1, 3, 2, 5, 4}, got)

	// Presentation never reorders the queue itself
	assert.Equal(t, TileID(2), q.Tiles[1].ID)
}

func TestQueueCloneIsIndependent(t *testing.T) {
	q := queued(1, 2)
	c := q.Clone()
	c.Push(Tile{ID: 9, Icon: 3})
	c.Tiles[0].Icon = 7

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, IconID(1), q.Tiles[0].Icon)
	assert.Equal(t, q.Capacity, c.Capacity)
}
