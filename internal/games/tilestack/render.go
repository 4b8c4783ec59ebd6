package tilestack

import (
	"fmt"

	"github.com/vovakirdan/tilestack/internal/core"
)

// Screen geometry of one grid cell.
const (
	colsPerCell = 6
	rowsPerCell = 3
	hudRows     = 2 // Status line plus a blank line
	queueRows   = 5 // Label, boxed slots, status line
	slotWidth   = 5
)

// Layout maps board units to screen cells.
type Layout struct {
	cellSize int
	minX     int // Smallest board x a tile can have
	minY     int
	boardW   int // Board width in screen columns
	boardH   int // Board height in screen rows
	top      int // Screen row of board y == minY
	capacity int
}

// NewLayout computes the screen layout for the given rules.
func NewLayout(r Rules) Layout {
	maxOffset := 0
	for _, o := range r.Offsets {
		if o < 0 {
			o = -o
		}
		maxOffset = max(maxOffset, o)
	}
	maxHigh := returnSlots
	for _, b := range r.Ranges {
		maxHigh = max(maxHigh, b[1])
	}
	bottomRow := max(maxHigh, r.ReturnRow+1)

	l := Layout{
		cellSize: r.CellSize,
		minX:     -maxOffset,
		minY:     -maxOffset,
		top:      hudRows,
		capacity: r.Capacity,
	}
	l.boardW = l.cols(maxHigh*r.CellSize + maxOffset + r.TileSize - r.CellSize)
	l.boardH = l.rows(bottomRow*r.CellSize + maxOffset + r.TileSize - r.CellSize)
	return l
}

func (l Layout) cols(x int) int { return (x - l.minX) * colsPerCell / l.cellSize }
func (l Layout) rows(y int) int { return (y - l.minY) * rowsPerCell / l.cellSize }

// MinScreen returns the smallest screen that fits board, HUD and queue.
func (l Layout) MinScreen() (w, h int) {
	queueW := l.capacity*slotWidth + 2
	return max(l.boardW, queueW), l.top + l.boardH + queueRows
}

// TileRect returns the screen rectangle a tile occupies.
func (l Layout) TileRect(t Tile) core.Rect {
	x := l.cols(t.X)
	y := l.top + l.rows(t.Y)
	return core.NewRect(x, y, t.W*colsPerCell/l.cellSize, t.H*rowsPerCell/l.cellSize)
}

// TileAt returns the clickable tile drawn at screen cell (x, y), or 0.
// Only the tile drawn on top at that cell counts, so pressing the visible
// corner of a covered tile does nothing.
func (l Layout) TileAt(scene Scene, x, y int) TileID {
	for i := len(scene) - 1; i >= 0; i-- {
		if scene[i].Status != StatusAvailable || !l.TileRect(scene[i]).Contains(x, y) {
			continue
		}
		if scene[i].Clickable() {
			return scene[i].ID
		}
		return 0
	}
	return 0
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderQueue(dst)

	switch g.session.Status {
	case SessionWon:
		g.renderBanner(dst, "ALL LEVELS CLEARED!", core.ColorBrightGreen)
	case SessionLost:
		g.renderBanner(dst, "QUEUE FULL - GAME OVER", core.ColorBrightRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	secs := s.ElapsedMs / 1000
	hud := fmt.Sprintf("Level %d/%d   Score %d   Time %02d:%02d   Tiles %d   Kinds %d",
		s.Level, s.MaxLevel, s.Score, secs/60, secs%60, s.Scene.Remaining(), IconsLeft(s.Scene).Size())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, len(hud), '─', core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	// Scene order is stacking order: draw bottom first so upper tiles paint over
	for _, t := range g.session.Scene {
		if t.Status != StatusAvailable {
			continue
		}
		icon := g.env.Catalog.Icon(t.Icon)
		r := g.layout.TileRect(t)

		border, face := core.ColorGray, core.ColorGray
		if !t.Occluded {
			border, face = core.ColorWhite, icon.Color
		}
		if t.ID == g.cursor {
			border = core.ColorBrightYellow
		}

		dst.DrawRect(r, ' ', core.ColorDefault)
		dst.DrawBox(r, border)
		cx, cy := r.Center()
		dst.SetColor(cx, cy, icon.Glyph, face)
	}
}

func (g *Game) renderQueue(dst *core.Screen) {
	q := g.session.Queue
	y := g.layout.top + g.layout.boardH
	capacity := q.Capacity

	label := fmt.Sprintf("Queue %d/%d", q.Len(), capacity)
	dst.DrawTextColor(0, y, label, core.ColorWhite)
	box := core.NewRect(0, y+1, capacity*slotWidth+2, 3)
	boxColor := core.ColorWhite
	if q.Len() >= capacity-2 {
		boxColor = core.ColorOrange
	}
	dst.DrawBox(box, boxColor)

	grouped := q.Grouped()
	for slot, t := range grouped {
		icon := g.env.Catalog.Icon(t.Icon)
		x := 1 + slot*slotWidth
		dst.DrawTextColor(x+1, y+2, "[", core.ColorGray)
		dst.SetColor(x+2, y+2, icon.Glyph, icon.Color)
		dst.DrawTextColor(x+3, y+2, "]", core.ColorGray)
	}

	// Per-icon counts next to the label, one entry per group
	x := len(label) + 2
	for i := 0; i < len(grouped); {
		j := i
		for j < len(grouped) && grouped[j].Icon == grouped[i].Icon {
			j++
		}
		icon := g.env.Catalog.Icon(grouped[i].Icon)
		dst.SetColor(x, y, icon.Glyph, icon.Color)
		dst.DrawTextColor(x+1, y, fmt.Sprintf("x%d", j-i), core.ColorGray)
		x += 5
		i = j
	}

	status := fmt.Sprintf("%d tiles free", ClickableSet(g.session.Scene).Size())
	switch {
	case g.session.Resolving:
		status = "..."
	case g.session.Status == SessionIdle:
		status = "Take a tile to start the clock"
	}
	dst.DrawTextColor(0, y+4, status, core.ColorGray)
}

func (g *Game) renderBanner(dst *core.Screen, title string, c core.Color) {
	cy := g.layout.top + g.layout.boardH/2
	w := max(len(title), 28) + 4
	r := core.NewRect((dst.Width()-w)/2, cy-2, w, 5)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	dst.DrawTextColor(r.X+(w-len(title))/2, cy-1, title, c)
	score := fmt.Sprintf("Score %d", g.session.Score)
	dst.DrawTextColor(r.X+(w-len(score))/2, cy, score, core.ColorWhite)
	hint := "R restart  B menu  Q quit"
	dst.DrawTextColor(r.X+(w-len(hint))/2, cy+1, hint, core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layout.MinScreen()
	dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
	dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}
