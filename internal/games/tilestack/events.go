package tilestack

// EventKind identifies something that happened while applying a command.
type EventKind uint8

const (
	EventNewGame   EventKind = iota // Scene regenerated by new game or restart
	EventClick                      // A tile moved into the queue
	EventMatch                      // Three queued tiles cleared
	EventPop                        // Oldest queued tile sent back
	EventUndo                       // Newest queued tile sent back
	EventWash                       // Board shuffled
	EventLevelUp                    // Level cleared, next one generated
	EventLevelSkip                  // Level changed by hand
	EventWin                        // Last level cleared
	EventLose                       // Queue overflowed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventClick:
		return "click"
	case EventMatch:
		return "match"
	case EventPop:
		return "pop"
	case EventUndo:
		return "undo"
	case EventWash:
		return "wash"
	case EventLevelUp:
		return "level_up"
	case EventLevelSkip:
		return "level_skip"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event describes one side effect of a command.
// Level and Score are the values after the event.
type Event struct {
	Kind  EventKind `json:"kind"`
	Level int       `json:"level"`
	Score int       `json:"score"`
	Delta int       `json:"delta"` // Score change caused by this event
	Icon  IconID    `json:"icon"`
	Tiles []TileID  `json:"tiles,omitempty"`
}

// Listener receives events after a command has been applied.
type Listener func(Event)
