package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoicePlay MenuChoice = iota
	ChoiceSelectLevel
	ChoiceScores
	ChoiceQuit
)

var menuLabels = []string{"Play", "Select Level", "High Scores", "Quit"}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	cfg         config.TileStackConfig
	catalog     tilestack.Catalog
	rules       tilestack.Rules
	cursor      int
	levelCursor int // 1-based level shown in the level picker
	inLevels    bool
	width       int
	height      int
	best        string // Best result line, empty without storage
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	level       int // Level chosen to play, 0 while still choosing
	scoreboard  bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg config.TileStackConfig, store *storage.Store, rt core.RuntimeConfig) MenuModel {
	// A config that failed to build a catalog never gets this far; an
	// empty catalog only affects the level preview
	catalog, _ := tilestack.CatalogFromConfig(cfg.Icons)

	m := MenuModel{
		cfg:         cfg,
		catalog:     catalog,
		rules:       tilestack.RulesFromConfig(cfg),
		levelCursor: cfg.Levels.StartLevel,
		width:       rt.ScreenW,
		height:      rt.ScreenH,
		config:      rt,
		keyMapper:   NewKeyMapper(),
	}

	if store != nil {
		if stats, err := store.GetGameStats(tilestack.GameID); err == nil && stats.GamesCount > 0 {
			m.best = fmt.Sprintf("Best score %d  |  Best level %d  |  Wins %d/%d",
				stats.HighScore, stats.BestLevel, stats.Wins, stats.GamesCount)
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inLevels {
		return m.handleLevelKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch MenuChoice(m.cursor) {
		case ChoicePlay:
			m.level = m.cfg.Levels.StartLevel
			return m, tea.Quit
		case ChoiceSelectLevel:
			m.inLevels = true
		case ChoiceScores:
			m.scoreboard = true
			return m, tea.Quit
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	maxLevel := m.cfg.Levels.MaxLevel

	switch action {
	case MenuActionUp, MenuActionLeft:
		m.levelCursor = core.Clamp(m.levelCursor-1, 1, maxLevel)
	case MenuActionDown, MenuActionRight:
		m.levelCursor = core.Clamp(m.levelCursor+1, 1, maxLevel)
	case MenuActionSelect:
		m.level = m.levelCursor
		return m, tea.Quit
	case MenuActionBack:
		m.inLevels = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  T I L E   S T A C K  ", m.width)))
	b.WriteString("\n\n")

	if m.inLevels {
		m.renderLevels(&b)
	} else {
		m.renderMain(&b)
	}

	return b.String()
}

func (m MenuModel) renderMain(b *strings.Builder) {
	b.WriteString(centerText("Match three to clear the board", m.width))
	b.WriteString("\n\n")

	for i, label := range menuLabels {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(centerText("> "+label, m.width)))
		} else {
			b.WriteString(centerText("  "+label, m.width))
		}
		b.WriteString("\n")
	}

	if m.best != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(centerText(m.best, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")
}

func (m MenuModel) renderLevels(b *strings.Builder) {
	b.WriteString(centerText("Select starting level", m.width))
	b.WriteString("\n\n")

	for level := 1; level <= m.cfg.Levels.MaxLevel; level++ {
		info := tilestack.DescribeLevel(level, m.catalog, m.rules)
		text := fmt.Sprintf("Level %2d   %2d icons  %3d tiles", level, info.Icons, info.Tiles)
		if level == m.levelCursor {
			b.WriteString(selectedStyle.Render(centerText("> "+text, m.width)))
		} else {
			b.WriteString(centerText("  "+text, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Level  |  Enter: Play  |  B: Back  |  Q: Quit", m.width)))
	b.WriteString("\n")
}

// Level returns the chosen level, or 0 if no level was chosen.
func (m MenuModel) Level() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.TileStackConfig, store *storage.Store, rt core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Level() > 0:
		result.Level = m.Level()
	default:
		result.Quit = true
	}

	return result, nil
}
