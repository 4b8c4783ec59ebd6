package tilestack

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tilestack/internal/core"
)

func newTestGame(t *testing.T, settle int) *Game {
	t.Helper()
	rules := DefaultRules()
	rules.SettleTicks = settle
	g := New(rules, testCatalog(t))
	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 60, TickRate: 60, Seed: 11})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 0)

	assert.Equal(t, GameID, g.ID())
	state := g.State()
	assert.Equal(t, 1, state.Level)
	assert.False(t, state.GameOver)
	assert.False(t, state.Paused)

	s := g.Session()
	cursor := g.Cursor()
	require.NotZero(t, cursor)
	assert.True(t, s.Scene[s.Scene.Index(cursor)].Clickable())
}

func TestGameTooSmallPauses(t *testing.T) {
	g := New(DefaultRules(), testCatalog(t))
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	assert.True(t, g.State().Paused)

	g.Step(frame(core.ActionConfirm))
	assert.Zero(t, g.Session().Queue.Len())

	g.Resize(120, 60)
	assert.False(t, g.State().Paused)
}

func TestGameConfirmClicksCursor(t *testing.T) {
	g := newTestGame(t, 2)
	cursor := g.Cursor()

	g.Step(frame(core.ActionConfirm))
	s := g.Session()
	require.Equal(t, 1, s.Queue.Len())
	assert.Equal(t, cursor, s.Queue.Tiles[0].ID)
	assert.True(t, s.Resolving)
	assert.NotEqual(t, cursor, g.Cursor(), "cursor moves off the queued tile")

	// Input is ignored until the barrier settles
	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, 1, g.Session().Queue.Len())

	g.Step(frame())
	assert.False(t, g.Session().Resolving)

	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, 2, g.Session().Queue.Len())
}

func TestGameNextCyclesClickable(t *testing.T) {
	g := newTestGame(t, 0)
	clickable := ClickableSet(g.Session().Scene)

	seen := map[TileID]bool{}
	for range clickable.Size() {
		g.Step(frame(core.ActionNext))
		id := g.Cursor()
		assert.True(t, clickable.Has(id))
		seen[id] = true
	}
	assert.Len(t, seen, clickable.Size())
}

func TestGamePointerPress(t *testing.T) {
	g := newTestGame(t, 0)
	s := g.Session()
	layout := NewLayout(DefaultRules())

	var target Tile
	for i := len(s.Scene) - 1; i >= 0; i-- {
		if s.Scene[i].Clickable() {
			target = s.Scene[i]
			break
		}
	}
	require.NotZero(t, target.ID)

	r := layout.TileRect(target)
	in := core.NewInputFrame()
	in.PressAt(r.Center())
	g.Step(in)

	s = g.Session()
	require.Equal(t, 1, s.Queue.Len())
	assert.Equal(t, target.ID, s.Queue.Tiles[0].ID)

	// Pressing empty space does nothing
	in.PressAt(0, 0)
	g.Step(in)
	assert.Equal(t, 1, g.Session().Queue.Len())
}

func TestLayoutTileAtTopOnly(t *testing.T) {
	layout := NewLayout(DefaultRules())
	scene := Scene{
		{ID: 1, X: 200, Y: 200, W: 100, H: 100},
		{ID: 2, X: 250, Y: 250, W: 100, H: 100},
	}
	Recompute(scene, InsertionOrder)

	lower := layout.TileRect(scene[0])
	upper := layout.TileRect(scene[1])

	assert.Equal(t, TileID(0), layout.TileAt(scene, lower.X, lower.Y), "visible corner of a covered tile")
	assert.Equal(t, TileID(2), layout.TileAt(scene, upper.X, upper.Y))

	scene[1].Status = StatusQueued
	Recompute(scene, InsertionOrder)
	assert.Equal(t, TileID(1), layout.TileAt(scene, lower.X+1, lower.Y+1))
}

func TestGameActionsMapToCommands(t *testing.T) {
	g := newTestGame(t, 0)
	g.Step(frame(core.ActionConfirm))
	require.Equal(t, 1, g.Session().Queue.Len())

	g.Step(frame(core.ActionPop))
	s := g.Session()
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, -1, s.Score)

	g.Step(frame(core.ActionWash))
	assert.Equal(t, -2, g.Session().Score)

	g.Step(frame(core.ActionLevelUp))
	assert.Equal(t, 2, g.Session().Level)

	g.Step(frame(core.ActionRestart))
	s = g.Session()
	assert.Equal(t, 1, s.Level)
	assert.Zero(t, s.Score)
}

func TestGameListeners(t *testing.T) {
	g := newTestGame(t, 0)

	var got []EventKind
	g.Subscribe(func(e Event) { got = append(got, e.Kind) })

	snap := g.Dispatch(Click(g.Cursor()))
	assert.Equal(t, SessionPlaying, snap.Status)
	assert.Len(t, snap.Queue, 1)

	g.Dispatch(Undo())
	g.Dispatch(LevelDown())
	assert.Equal(t, []EventKind{EventClick, EventUndo}, got)
}

func TestGameRunClock(t *testing.T) {
	g := newTestGame(t, 0)
	g.Dispatch(Click(g.Cursor()))

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.RunClock(ctx, time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return g.Snapshot().ElapsedMs >= 5
	}, time.Second, time.Millisecond)

	cancel()
	wg.Wait()

	stopped := g.Snapshot().ElapsedMs
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, stopped, g.Snapshot().ElapsedMs)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 0)
	screen := core.NewScreen(120, 60)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Level 1/10")
	assert.Contains(t, out, "Queue 0/7")

	g.Dispatch(Click(g.Cursor()))
	g.Render(screen)
	assert.Contains(t, screen.String(), "Queue 1/7")
	assert.Contains(t, screen.String(), "x1")

	small := New(DefaultRules(), testCatalog(t))
	small.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10})
	tiny := core.NewScreen(30, 10)
	small.Render(tiny)
	assert.True(t, strings.Contains(tiny.String(), "too small"))
}
