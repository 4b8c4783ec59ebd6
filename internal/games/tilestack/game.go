package tilestack

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tilestack/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "tilestack"

// Game runs a tile stack session for a host. Commands are applied one at a
// time under a lock, so a UI loop, a clock goroutine and an SSH session can
// share one Game.
type Game struct {
	mu sync.Mutex

	env     Env
	session Session
	tick    uint64

	listeners []Listener

	settleLeft int    // Ticks until the in-flight click settles
	cursor     TileID // Keyboard selection, 0 when nothing is clickable

	layout   Layout
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given rules and icon catalog.
// Reset must be called before the game is played.
func New(rules Rules, catalog Catalog) *Game {
	return &Game{
		env: Env{Rules: rules, Catalog: catalog},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tile Stack"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.env.RNG = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.settleLeft = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = NewLayout(g.env.Rules)
	g.session = NewSession(g.env.Rules.StartLevel, g.env)
	g.cursor = 0
	g.fixCursor()

	g.checkScreenSize()
}

// Resize adapts to a new screen size without touching the session.
func (g *Game) Resize(width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.layout.MinScreen()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Subscribe registers a listener for engine events.
// Listeners run after the command that caused them, outside the game lock.
func (g *Game) Subscribe(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Dispatch applies one command and returns the resulting snapshot.
func (g *Game) Dispatch(cmd Command) Snapshot {
	g.mu.Lock()
	events := g.apply(cmd)
	snap := g.session.Snapshot()
	listeners := g.listeners
	g.mu.Unlock()

	g.publish(listeners, events)
	return snap
}

// apply runs a command against the current session. Callers hold g.mu.
func (g *Game) apply(cmd Command) []Event {
	wasResolving := g.session.Resolving
	next, events := Apply(g.session, cmd, g.env)
	g.session = next

	if next.Resolving && !wasResolving {
		g.settleLeft = g.env.Rules.SettleTicks
	}
	if len(events) > 0 {
		g.fixCursor()
	}
	return events
}

func (g *Game) publish(listeners []Listener, events []Event) {
	for _, e := range events {
		for _, l := range listeners {
			l(e)
		}
	}
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.clone()
}

// Snapshot returns the observable state without applying a command.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Snapshot()
}

// Cursor returns the tile currently selected for keyboard play.
func (g *Game) Cursor() TileID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursor
}

// RunClock advances the play clock every interval until ctx is done.
// The clock only counts while the session is playing and the game is not
// paused for a too small screen.
func (g *Game) RunClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.mu.Lock()
			paused := g.tooSmall
			g.mu.Unlock()
			if !paused {
				g.Dispatch(Tick(interval.Milliseconds()))
			}
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	g.tick++

	if g.tooSmall {
		state := g.stateLocked()
		g.mu.Unlock()
		return core.StepResult{State: state}
	}

	var events []Event

	// Count down the settle barrier before taking new input
	if g.session.Resolving {
		g.settleLeft--
		if g.settleLeft <= 0 {
			events = append(events, g.apply(Settle())...)
		}
	}

	for _, cmd := range g.commandsFor(in) {
		events = append(events, g.apply(cmd)...)
	}

	state := g.stateLocked()
	listeners := g.listeners
	g.mu.Unlock()

	g.publish(listeners, events)
	return core.StepResult{State: state}
}

// commandsFor maps one frame of input to engine commands. Callers hold g.mu.
func (g *Game) commandsFor(in core.InputFrame) []Command {
	var cmds []Command

	switch {
	case in.Has(core.ActionRestart):
		return []Command{Restart()}
	case in.Has(core.ActionLevelUp):
		cmds = append(cmds, LevelUp())
	case in.Has(core.ActionLevelDown):
		cmds = append(cmds, LevelDown())
	case in.Has(core.ActionPop):
		cmds = append(cmds, Pop())
	case in.Has(core.ActionUndo):
		cmds = append(cmds, Undo())
	case in.Has(core.ActionWash):
		cmds = append(cmds, Wash())
	}

	switch {
	case in.Has(core.ActionNext):
		g.nextCursor()
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	}

	if in.Press != nil {
		if id := g.layout.TileAt(g.session.Scene, in.Press.X, in.Press.Y); id != 0 {
			g.cursor = id
			cmds = append(cmds, Click(id))
		}
	} else if in.Has(core.ActionConfirm) && g.cursor != 0 {
		cmds = append(cmds, Click(g.cursor))
	}
	return cmds
}

// fixCursor moves the cursor to a clickable tile if it no longer points at one.
func (g *Game) fixCursor() {
	scene := g.session.Scene
	if i := scene.Index(g.cursor); i >= 0 && scene[i].Clickable() {
		return
	}
	g.cursor = 0
	// Prefer the top-most tile, it is the one drawn last
	for i := len(scene) - 1; i >= 0; i-- {
		if scene[i].Clickable() {
			g.cursor = scene[i].ID
			return
		}
	}
}

// nextCursor cycles the cursor through clickable tiles in scene order.
func (g *Game) nextCursor() {
	scene := g.session.Scene
	start := scene.Index(g.cursor)
	for k := 1; k <= len(scene); k++ {
		i := (start + k) % len(scene)
		if i >= 0 && scene[i].Clickable() {
			g.cursor = scene[i].ID
			return
		}
	}
}

// moveCursor selects the nearest clickable tile in direction (dx, dy).
func (g *Game) moveCursor(dx, dy int) {
	scene := g.session.Scene
	from := scene.Index(g.cursor)
	if from < 0 {
		g.fixCursor()
		return
	}

	best, bestDist := TileID(0), math.MaxInt
	for i := range scene {
		if i == from || !scene[i].Clickable() {
			continue
		}
		ox := scene[i].X - scene[from].X
		oy := scene[i].Y - scene[from].Y
		// Must lie strictly in the requested direction
		if ox*dx+oy*dy <= 0 {
			continue
		}
		// Penalize sideways drift so straight moves win
		along := ox*dx + oy*dy
		side := ox*dy - oy*dx
		if side < 0 {
			side = -side
		}
		if dist := along + 2*side; dist < bestDist {
			best, bestDist = scene[i].ID, dist
		}
	}
	if best != 0 {
		g.cursor = best
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		GameOver: g.session.Status.Terminal(),
		Won:      g.session.Status == SessionWon,
		Paused:   g.tooSmall,
	}
}
