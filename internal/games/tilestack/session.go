package tilestack

import "github.com/vovakirdan/tilestack/internal/core"

// SessionStatus is the lifecycle state of a session.
type SessionStatus uint8

const (
	SessionIdle    SessionStatus = iota // Scene dealt, no tile clicked yet
	SessionPlaying                      // Clock running
	SessionWon                          // Last level cleared
	SessionLost                         // Queue overflowed
)

// String returns a human-readable name for the status.
func (s SessionStatus) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionPlaying:
		return "playing"
	case SessionWon:
		return "won"
	case SessionLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s SessionStatus) Terminal() bool {
	return s == SessionWon || s == SessionLost
}

// Session is the whole game state. It is a plain value: Apply never
// mutates the session it is given.
type Session struct {
	Level     int           `json:"level"`
	MaxLevel  int           `json:"max_level"`
	Score     int           `json:"score"`
	Scene     Scene         `json:"scene"`
	Queue     Queue         `json:"queue"`
	ElapsedMs int64         `json:"elapsed_ms"`
	Status    SessionStatus `json:"status"`

	// Resolving is set while a clicked tile waits for Settle.
	// Clicks and queue commands are rejected until it clears.
	Resolving bool   `json:"resolving"`
	Pending   IconID `json:"pending"`

	// Returned counts tiles sent back by pop/undo on this level.
	Returned int `json:"returned"`
}

// clone returns a copy whose scene and queue can be mutated freely.
func (s Session) clone() Session {
	s.Scene = s.Scene.Clone()
	s.Queue = s.Queue.Clone()
	return s
}

// Env is what transitions need besides the session itself.
type Env struct {
	Rules   Rules
	Catalog Catalog
	RNG     RNG
}

// CommandKind identifies a command.
type CommandKind uint8

const (
	CmdNewGame CommandKind = iota
	CmdRestart
	CmdClick
	CmdPop
	CmdUndo
	CmdWash
	CmdLevelUp
	CmdLevelDown
	CmdSettle
	CmdTick
)

// Command is one input to the state machine.
type Command struct {
	Kind  CommandKind
	Tile  TileID // CmdClick
	Level int    // CmdNewGame
	Ms    int64  // CmdTick
}

// NewGame deals a fresh scene at level, keeping the score.
func NewGame(level int) Command { return Command{Kind: CmdNewGame, Level: level} }

// Restart starts over from the first level with zero score.
func Restart() Command { return Command{Kind: CmdRestart} }

// Click moves a tile into the queue.
func Click(id TileID) Command { return Command{Kind: CmdClick, Tile: id} }

// Pop sends the oldest queued tile back to the board.
func Pop() Command { return Command{Kind: CmdPop} }

// Undo sends the newest queued tile back to the board.
func Undo() Command { return Command{Kind: CmdUndo} }

// Wash shuffles the tiles left on the board.
func Wash() Command { return Command{Kind: CmdWash} }

// LevelUp skips to the next level.
func LevelUp() Command { return Command{Kind: CmdLevelUp} }

// LevelDown skips to the previous level.
func LevelDown() Command { return Command{Kind: CmdLevelDown} }

// Settle finishes a click that is waiting on the settle barrier.
func Settle() Command { return Command{Kind: CmdSettle} }

// Tick advances the play clock.
func Tick(ms int64) Command { return Command{Kind: CmdTick, Ms: ms} }

// NewSession deals the first scene of a game at the given level.
func NewSession(level int, env Env) Session {
	s, _ := newGame(Session{}, level, env)
	return s
}

// Apply runs one command and returns the resulting session and the events
// it produced. Commands that do not apply in the current state return the
// session unchanged and no events.
func Apply(s Session, cmd Command, env Env) (Session, []Event) {
	switch cmd.Kind {
	case CmdNewGame:
		return newGame(s, cmd.Level, env)
	case CmdRestart:
		return newGame(Session{}, env.Rules.StartLevel, env)
	case CmdTick:
		if s.Status == SessionPlaying && cmd.Ms > 0 {
			s.ElapsedMs += cmd.Ms
		}
		return s, nil
	}

	if s.Status.Terminal() {
		return s, nil
	}

	switch cmd.Kind {
	case CmdClick:
		return click(s, cmd.Tile, env)
	case CmdSettle:
		if !s.Resolving {
			return s, nil
		}
		s = s.clone()
		s.Resolving = false
		return resolve(s, s.Pending, env)
	}

	// Everything below waits for an in-flight click to settle
	if s.Resolving {
		return s, nil
	}

	switch cmd.Kind {
	case CmdPop:
		return sendBack(s, false, env)
	case CmdUndo:
		return sendBack(s, true, env)
	case CmdWash:
		s = s.clone()
		Shuffle(s.Scene, s.Level, env.Rules, env.RNG)
		s.Score -= env.Rules.WashCost
		return s, []Event{{Kind: EventWash, Level: s.Level, Score: s.Score, Delta: -env.Rules.WashCost}}
	case CmdLevelUp:
		return skipLevel(s, s.Level+1, env)
	case CmdLevelDown:
		return skipLevel(s, s.Level-1, env)
	}
	return s, nil
}

// newGame deals a scene at level (clamped), keeping prev's score.
func newGame(prev Session, level int, env Env) (Session, []Event) {
	s := Session{
		Level:    core.Clamp(level, 1, env.Rules.MaxLevel),
		MaxLevel: env.Rules.MaxLevel,
		Score:    prev.Score,
		Status:   SessionIdle,
	}
	deal(&s, env)
	return s, []Event{{Kind: EventNewGame, Level: s.Level, Score: s.Score}}
}

// deal replaces scene and queue with a fresh level.
func deal(s *Session, env Env) {
	s.Scene = Generate(s.Level, env.Catalog, env.Rules, env.RNG)
	s.Queue = NewQueue(env.Rules.Capacity)
	s.Returned = 0
	s.Resolving = false
}

func click(s Session, id TileID, env Env) (Session, []Event) {
	if s.Resolving || s.Queue.Full() {
		return s, nil
	}
	i := s.Scene.Index(id)
	if i < 0 || !s.Scene[i].Clickable() {
		return s, nil
	}

	s = s.clone()
	if s.Status == SessionIdle {
		s.Status = SessionPlaying
	}

	tile := s.Scene[i]
	s.Scene[i].Status = StatusQueued
	s.Queue.Push(tile)
	Recompute(s.Scene, InsertionOrder)

	events := []Event{{Kind: EventClick, Level: s.Level, Score: s.Score, Icon: tile.Icon, Tiles: []TileID{id}}}

	// Overflow is decided before the match, even if this click completes a triple
	if s.Queue.Len() >= env.Rules.Capacity {
		s.Status = SessionLost
		return s, append(events, Event{Kind: EventLose, Level: s.Level, Score: s.Score})
	}

	if env.Rules.SettleTicks > 0 {
		s.Resolving = true
		s.Pending = tile.Icon
		return s, events
	}

	s, more := resolve(s, tile.Icon, env)
	return s, append(events, more...)
}

// resolve clears a triple of icon from the queue if there is one, and
// advances the level when the scene runs out of tiles. s must already be a
// private copy.
func resolve(s Session, icon IconID, env Env) (Session, []Event) {
	removed := s.Queue.TryResolveMatch(icon)
	if removed == nil {
		return s, nil
	}

	ids := make([]TileID, len(removed))
	for k, t := range removed {
		ids[k] = t.ID
		if i := s.Scene.Index(t.ID); i >= 0 {
			s.Scene[i].Status = StatusMatched
		}
	}
	Recompute(s.Scene, InsertionOrder)
	s.Score += env.Rules.MatchScore

	events := []Event{{Kind: EventMatch, Level: s.Level, Score: s.Score, Delta: env.Rules.MatchScore, Icon: icon, Tiles: ids}}

	if !s.Scene.Cleared() {
		return s, events
	}

	if s.Level >= s.MaxLevel {
		s.Status = SessionWon
		return s, append(events, Event{Kind: EventWin, Level: s.Level, Score: s.Score})
	}

	bonus := s.Level
	s.Score += bonus
	s.Level++
	deal(&s, env)
	return s, append(events, Event{Kind: EventLevelUp, Level: s.Level, Score: s.Score, Delta: bonus})
}

// sendBack returns one queued tile to the board's return row.
func sendBack(s Session, newest bool, env Env) (Session, []Event) {
	if s.Status != SessionPlaying || s.Queue.Len() == 0 {
		return s, nil
	}

	s = s.clone()
	kind, cost := EventPop, env.Rules.PopCost
	var tile Tile
	if newest {
		kind, cost = EventUndo, env.Rules.UndoCost
		tile, _ = s.Queue.PopNewest()
	} else {
		tile, _ = s.Queue.PopOldest()
	}

	if i := s.Scene.Index(tile.ID); i >= 0 {
		slot, free := returnSlot(s.Scene, s.Returned, env.Rules)
		s.Scene[i].X = slot * env.Rules.CellSize
		s.Scene[i].Y = env.Rules.ReturnRow * env.Rules.CellSize
		s.Scene[i].Status = StatusAvailable
		s.Returned++
		if !free {
			// Every slot is covered: lift the tile to the top of the pile
			// so it stays clickable
			t := s.Scene[i]
			copy(s.Scene[i:], s.Scene[i+1:])
			s.Scene[len(s.Scene)-1] = t
		}
	}
	Recompute(s.Scene, InsertionOrder)
	s.Score -= cost

	return s, []Event{{Kind: kind, Level: s.Level, Score: s.Score, Delta: -cost, Icon: tile.Icon, Tiles: []TileID{tile.ID}}}
}

// returnSlot picks the first slot on the return row that no tile on the
// board covers. When all are covered it cycles by the returned count and
// reports false.
func returnSlot(scene Scene, returned int, rules Rules) (slot int, free bool) {
	y := rules.ReturnRow * rules.CellSize
	for slot := range returnSlots {
		box := core.NewRect(slot*rules.CellSize, y, rules.TileSize, rules.TileSize)
		covered := false
		for i := range scene {
			if scene[i].Status == StatusAvailable && box.Intersects(scene[i].Rect()) {
				covered = true
				break
			}
		}
		if !covered {
			return slot, true
		}
	}
	return returned % returnSlots, false
}

// skipLevel jumps to level by hand. Going up costs the level being left;
// going down is free.
func skipLevel(s Session, level int, env Env) (Session, []Event) {
	if level < 1 || level > s.MaxLevel {
		return s, nil
	}

	delta := 0
	if level > s.Level {
		delta = -s.Level
	}
	s.Score += delta
	s.Level = level
	deal(&s, env)

	return s, []Event{{Kind: EventLevelSkip, Level: s.Level, Score: s.Score, Delta: delta}}
}
