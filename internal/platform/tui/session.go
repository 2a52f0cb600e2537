package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/storage"
)

// SessionOptions describes what a session plays and for whom.
type SessionOptions struct {
	GameID  string
	Config  config.NeonConfig
	Runtime core.RuntimeConfig
	Player  string
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// This is the top-level model for `menu` and for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	opts     SessionOptions
	title    string
	current  sessionScreen
	menu     MenuModel
	scores   ScoreboardModel
	game     *GameModel
	loops    int
	quitting bool
}

// NewSessionModel creates a session model. The game must be registered.
func NewSessionModel(store *storage.Store, logger *log.Logger, opts SessionOptions) (SessionModel, error) {
	title, ok := gameTitle(opts.GameID)
	if !ok {
		return SessionModel{}, fmt.Errorf("tui: unknown game %q", opts.GameID)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := SessionModel{
		store:  store,
		logger: logger,
		opts:   opts,
		title:  title,
	}
	m.menu = m.newMenu()
	return m, nil
}

func gameTitle(id string) (string, bool) {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title, true
		}
	}
	return "", false
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.store, m.opts.GameID, m.title, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch *selected {
	case MenuScores:
		m.scores = NewScoreboardModel(m.store, m.opts.GameID, m.title, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case MenuPlay:
		game, err := registry.Create(m.opts.GameID, m.opts.Config)
		if err != nil {
			// Shouldn't happen since the constructor checked the id
			m.logger.Error("cannot create game", "err", err)
			m.menu = m.newMenu()
			return m, nil
		}

		m.loops++
		gameModel := NewGameModel(game, m.store, m.opts.Runtime, m.logger, m.opts.Player)
		gameModel.loop = m.loops
		m.game = &gameModel
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.current = screenMenu
		m.menu = m.newMenu() // picks up a new best score
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.current = screenMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, logger *log.Logger, opts SessionOptions) error {
	model, err := NewSessionModel(store, logger, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
