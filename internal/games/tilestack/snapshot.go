package tilestack

// TileView is the public view of a board tile.
type TileView struct {
	ID       TileID     `json:"id"`
	Icon     IconID     `json:"icon"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	Status   TileStatus `json:"status"`
	Occluded bool       `json:"occluded"`
}

// QueueView is the public view of a queued tile.
type QueueView struct {
	ID           TileID `json:"id"`
	Icon         IconID `json:"icon"`
	DisplayIndex int    `json:"display_index"`
}

// Snapshot is the observable state after a command.
type Snapshot struct {
	Status    SessionStatus `json:"status"`
	Level     int           `json:"level"`
	MaxLevel  int           `json:"max_level"`
	Score     int           `json:"score"`
	ElapsedMs int64         `json:"elapsed_ms"`
	Scene     []TileView    `json:"scene"`
	Queue     []QueueView   `json:"queue"`
}

// Snapshot returns the observable state of the session.
func (s Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:    s.Status,
		Level:     s.Level,
		MaxLevel:  s.MaxLevel,
		Score:     s.Score,
		ElapsedMs: s.ElapsedMs,
		Scene:     make([]TileView, len(s.Scene)),
		Queue:     make([]QueueView, s.Queue.Len()),
	}

	for i, t := range s.Scene {
		snap.Scene[i] = TileView{
			ID:       t.ID,
			Icon:     t.Icon,
			X:        t.X,
			Y:        t.Y,
			Status:   t.Status,
			Occluded: t.Occluded,
		}
	}

	order := s.Queue.DisplayOrder()
	for i, t := range s.Queue.Tiles {
		snap.Queue[i] = QueueView{ID: t.ID, Icon: t.Icon, DisplayIndex: order[i]}
	}
	return snap
}
