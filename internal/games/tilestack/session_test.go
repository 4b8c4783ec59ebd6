package tilestack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionTwoIconCatalog(t *testing.T) {
	env := testEnv(testCatalog(t)[:2], 0)

	s := NewSession(1, env)
	assert.Len(t, s.Scene, 12)
	assert.Equal(t, SessionIdle, s.Status)
	assert.Equal(t, 1, s.Level)
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, env.Rules.Capacity, s.Queue.Capacity)
}

func TestClickTripleClears(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 1, 0, 0, 1, 1))

	s, events := Apply(s, Click(1), env)
	assert.Equal(t, SessionPlaying, s.Status)
	assert.Equal(t, 1, s.Queue.Len())
	assert.Equal(t, []EventKind{EventClick}, kinds(events))

	s, _ = Apply(s, Click(3), env)
	assert.Equal(t, 2, s.Queue.Len())

	s, events = Apply(s, Click(4), env)
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, 3, s.Score)
	assert.Equal(t, []EventKind{EventClick, EventMatch}, kinds(events))
	assert.ElementsMatch(t, []TileID{1, 3, 4}, events[1].Tiles)
	assert.Equal(t, 3, events[1].Delta)

	for _, id := range []TileID{1, 3, 4} {
		assert.Equal(t, StatusMatched, s.Scene[s.Scene.Index(id)].Status)
	}
	assert.Equal(t, 3, s.Scene.Remaining())
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	before := sessionWith(env, 1, flatScene(env.Rules, 0, 0, 0))

	after, _ := clickAll(before, env, 1, 2)
	require.Equal(t, 2, after.Queue.Len())

	assert.Zero(t, before.Queue.Len())
	for _, tile := range before.Scene {
		assert.Equal(t, StatusAvailable, tile.Status)
	}
}

func TestClickRejected(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	scene := Scene{
		{ID: 1, Icon: 0, X: 0, Y: 0, W: 100, H: 100, Status: StatusAvailable},
		{ID: 2, Icon: 1, X: 50, Y: 50, W: 100, H: 100, Status: StatusAvailable},
	}
	Recompute(scene, InsertionOrder)
	s := sessionWith(env, 1, scene)

	tests := []struct {
		name string
		id   TileID
	}{
		{"occluded tile", 1},
		{"unknown tile", 99},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, events := Apply(s, Click(tc.id), env)
			assert.Empty(t, events)
			assert.Equal(t, s, next)
		})
	}

	s, _ = Apply(s, Click(2), env)
	next, events := Apply(s, Click(2), env)
	assert.Empty(t, events, "queued tile")
	assert.Equal(t, s, next)

	// Uncovered by the click
	assert.True(t, s.Scene[0].Clickable())
}

func TestPopOnEmptyQueueIsNoop(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := NewSession(1, env)

	next, events := Apply(s, Pop(), env)
	assert.Empty(t, events)
	assert.Zero(t, next.Score)
	assert.Equal(t, SessionIdle, next.Status)

	s, _ = clickAll(sessionWith(env, 1, flatScene(env.Rules, 0, 1)), env, 1)
	s, _ = Apply(s, Pop(), env)
	next, events = Apply(s, Undo(), env)
	assert.Empty(t, events)
	assert.Equal(t, s.Score, next.Score)
}

func TestOverflowLoses(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 0, 1, 1, 2, 2, 3, 4))

	s, events := clickAll(s, env, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, SessionLost, s.Status)
	assert.Equal(t, 7, s.Queue.Len())
	assert.Equal(t, EventLose, events[len(events)-1].Kind)

	next, events := Apply(s, Click(8), env)
	assert.Empty(t, events)
	assert.Equal(t, s, next)
}

func TestOverflowBeatsMatch(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 0, 1, 1, 2, 2, 0))

	s, events := clickAll(s, env, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, SessionLost, s.Status)
	assert.Zero(t, s.Score)
	assert.NotContains(t, kinds(events), EventMatch)
}

func TestClearLastLevelWins(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, env.Rules.MaxLevel, flatScene(env.Rules, 2, 2, 2))

	s, events := clickAll(s, env, 1, 2, 3)
	assert.Equal(t, SessionWon, s.Status)
	assert.Equal(t, env.Rules.MaxLevel, s.Level)
	assert.Equal(t, []EventKind{EventClick, EventClick, EventClick, EventMatch, EventWin}, kinds(events))

	next, events := Apply(s, Wash(), env)
	assert.Empty(t, events)
	assert.Equal(t, s, next)
}

func TestClearLevelAdvances(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 2, flatScene(env.Rules, 2, 2, 2))
	s.Score = 10

	s, events := clickAll(s, env, 1, 2, 3)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 10+3+2, s.Score)
	assert.Zero(t, s.Queue.Len())
	assert.Len(t, s.Scene, len(IconPool(3, len(env.Catalog)))*TilesPerIcon)
	assert.Equal(t, SessionPlaying, s.Status)

	last := events[len(events)-1]
	assert.Equal(t, EventLevelUp, last.Kind)
	assert.Equal(t, 2, last.Delta)
}

func TestPopAndUndoReturnTiles(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 1, 2))
	s, _ = clickAll(s, env, 1, 2, 3)

	s, events := Apply(s, Pop(), env)
	require.Equal(t, []EventKind{EventPop}, kinds(events))
	assert.Equal(t, []TileID{1}, events[0].Tiles)
	assert.Equal(t, -env.Rules.PopCost, s.Score)

	first := s.Scene[s.Scene.Index(1)]
	assert.Equal(t, StatusAvailable, first.Status)
	assert.Equal(t, 0, first.X)
	assert.Equal(t, env.Rules.ReturnRow*env.Rules.CellSize, first.Y)
	assert.True(t, first.Clickable())

	s, events = Apply(s, Undo(), env)
	require.Equal(t, []EventKind{EventUndo}, kinds(events))
	assert.Equal(t, []TileID{3}, events[0].Tiles)
	assert.Equal(t, -env.Rules.PopCost-env.Rules.UndoCost, s.Score)

	third := s.Scene[s.Scene.Index(3)]
	assert.Equal(t, env.Rules.CellSize, third.X, "second return takes the next slot")
	assert.Equal(t, 2, s.Returned)
	assert.Equal(t, []TileID{2}, []TileID{s.Queue.Tiles[0].ID})
}

func TestReturnSlotsWrapToFreeSlot(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 1, 2, 3, 4))

	s, _ = Apply(s, Click(5), env)
	s, _ = Apply(s, Pop(), env)
	require.Equal(t, 0, s.Scene[s.Scene.Index(5)].X)

	// The counter has wrapped, but slot 0 is still held by tile 5
	s.Returned = returnSlots
	s, _ = Apply(s, Click(2), env)
	s, _ = Apply(s, Undo(), env)

	undone := s.Scene[s.Scene.Index(2)]
	assert.Equal(t, env.Rules.CellSize, undone.X)
	assert.Equal(t, env.Rules.ReturnRow*env.Rules.CellSize, undone.Y)
	assert.True(t, undone.Clickable())
	assert.True(t, s.Scene[s.Scene.Index(5)].Clickable())
	assert.Equal(t, returnSlots+1, s.Returned)
}

func TestReturnSlotsAllTakenStaysClickable(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	scene := flatScene(env.Rules, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	for i := range returnSlots {
		scene[i].X = i * env.Rules.CellSize
		scene[i].Y = env.Rules.ReturnRow * env.Rules.CellSize
	}
	Recompute(scene, InsertionOrder)
	s := sessionWith(env, 1, scene)

	s, _ = Apply(s, Click(9), env)
	s, events := Apply(s, Undo(), env)
	require.Equal(t, []EventKind{EventUndo}, kinds(events))

	undone := s.Scene[s.Scene.Index(9)]
	assert.Equal(t, 0, undone.X)
	assert.True(t, undone.Clickable())
	assert.Equal(t, TileID(9), s.Scene[len(s.Scene)-1].ID, "lifted to the top of the pile")
	assert.False(t, s.Scene[s.Scene.Index(1)].Clickable())
	assert.Len(t, s.Scene, 9)
}

func TestWash(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := NewSession(3, env)

	next, events := Apply(s, Wash(), env)
	require.Equal(t, []EventKind{EventWash}, kinds(events))
	assert.Equal(t, -env.Rules.WashCost, next.Score)
	assert.Equal(t, SessionIdle, next.Status)
	assert.Len(t, next.Scene, len(s.Scene))
	assert.NotEqual(t, s.Scene, next.Scene)
}

func TestLevelSkip(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := NewSession(2, env)
	s.Status = SessionPlaying

	up, events := Apply(s, LevelUp(), env)
	require.Equal(t, []EventKind{EventLevelSkip}, kinds(events))
	assert.Equal(t, 3, up.Level)
	assert.Equal(t, -2, up.Score)
	assert.Equal(t, SessionPlaying, up.Status)

	down, events := Apply(up, LevelDown(), env)
	require.Len(t, events, 1)
	assert.Equal(t, 2, down.Level)
	assert.Equal(t, -2, down.Score, "going down is free")

	low := NewSession(1, env)
	next, events := Apply(low, LevelDown(), env)
	assert.Empty(t, events)
	assert.Equal(t, low, next)

	high := NewSession(env.Rules.MaxLevel, env)
	next, events = Apply(high, LevelUp(), env)
	assert.Empty(t, events)
	assert.Equal(t, high, next)
}

func TestSettleBarrier(t *testing.T) {
	env := testEnv(testCatalog(t), 9)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 0, 0, 1))

	s, events := Apply(s, Click(1), env)
	assert.True(t, s.Resolving)
	assert.Equal(t, []EventKind{EventClick}, kinds(events))

	for _, cmd := range []Command{Click(4), Pop(), Undo(), Wash(), LevelUp()} {
		next, events := Apply(s, cmd, env)
		assert.Empty(t, events, "command %d while resolving", cmd.Kind)
		assert.Equal(t, s, next)
	}

	s, events = Apply(s, Settle(), env)
	assert.False(t, s.Resolving)
	assert.Empty(t, events, "no triple yet")

	s, _ = Apply(s, Click(2), env)
	s, _ = Apply(s, Settle(), env)
	s, _ = Apply(s, Click(3), env)
	assert.Equal(t, 3, s.Queue.Len(), "match waits for settle")

	s, events = Apply(s, Settle(), env)
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, []EventKind{EventMatch}, kinds(events))

	next, events := Apply(s, Settle(), env)
	assert.Empty(t, events)
	assert.Equal(t, s, next)
}

func TestTickCountsOnlyWhilePlaying(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 0, 1, 2, 3, 4, 5, 6))

	s, _ = Apply(s, Tick(100), env)
	assert.Zero(t, s.ElapsedMs)

	s, _ = Apply(s, Click(1), env)
	s, _ = Apply(s, Tick(100), env)
	s, _ = Apply(s, Tick(-5), env)
	assert.Equal(t, int64(100), s.ElapsedMs)

	s, _ = clickAll(s, env, 2, 3, 4, 5, 6, 7)
	require.Equal(t, SessionLost, s.Status)
	s, _ = Apply(s, Tick(100), env)
	assert.Equal(t, int64(100), s.ElapsedMs)
}

func TestRestartAndNewGame(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 4, flatScene(env.Rules, 0, 1, 2, 3, 4, 5, 6))
	s.Score = 12
	s, _ = clickAll(s, env, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, SessionLost, s.Status)

	fresh, events := Apply(s, NewGame(2), env)
	assert.Equal(t, []EventKind{EventNewGame}, kinds(events))
	assert.Equal(t, SessionIdle, fresh.Status)
	assert.Equal(t, 2, fresh.Level)
	assert.Equal(t, 12, fresh.Score)
	assert.Zero(t, fresh.Queue.Len())
	assert.Zero(t, fresh.ElapsedMs)

	restarted, _ := Apply(s, Restart(), env)
	assert.Equal(t, env.Rules.StartLevel, restarted.Level)
	assert.Zero(t, restarted.Score)
	assert.Equal(t, SessionIdle, restarted.Status)

	clamped, _ := Apply(s, NewGame(99), env)
	assert.Equal(t, env.Rules.MaxLevel, clamped.Level)
}

func TestSnapshot(t *testing.T) {
	env := testEnv(testCatalog(t), 0)
	s := sessionWith(env, 1, flatScene(env.Rules, 3, 1, 3))
	s, _ = clickAll(s, env, 1, 2, 3)

	snap := s.Snapshot()
	assert.Equal(t, SessionPlaying, snap.Status)
	assert.Len(t, snap.Scene, 3)
	require.Len(t, snap.Queue, 3)
	assert.Equal(t, []int{0, 2, 1}, []int{snap.Queue[0].DisplayIndex, snap.Queue[1].DisplayIndex, snap.Queue[2].DisplayIndex})
	assert.Equal(t, StatusQueued, snap.Scene[1].Status)
}
