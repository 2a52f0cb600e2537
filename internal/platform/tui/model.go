package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/storage"
)

// maxFrameGapMs caps how far one tick may move the virtual clock, so a
// stalled terminal does not teleport the run forward.
const maxFrameGapMs = 250

// GameModel is the Bubble Tea model that runs a single game.
// It keeps a virtual clock that only advances while the run is live,
// so a paused game simply stops receiving time.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *KeyHold
	now       func() time.Time

	player    string
	loop      int
	clockMs   float64
	lastWall  time.Time
	gameState core.GameState

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewGameModel creates a model for the given game.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewKeyHold(0, 0),
		now:       time.Now,
		player:    player,
	}
}

// Init starts a new run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.player)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is scaled at render time, so the run survives a resize.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if k, ok := m.keyMapper.MapMovement(msg); ok {
		if !m.gameState.Paused && !m.gameState.GameOver {
			m.hold.Press(k, wallMs(m.now()))
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.game.SetPaused(!m.gameState.Paused)
			m.hold.Clear()
			m.gameState = m.game.State()
		}

	case core.ActionBack:
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.game.SetPaused(true)
		m.hold.Clear()
		m.gameState = m.game.State()

	case core.ActionRestart, core.ActionConfirm:
		if m.gameState.GameOver {
			m.game.Restart()
			m.hold.Clear()
			m.gameState = m.game.State()
			m.scoreSaved = false
			m.logger.Debug("run restarted", "game", m.game.ID(), "player", m.player)
		}
	}

	return m, nil
}

// handleTick advances the virtual clock and steps the game.
func (m GameModel) handleTick(wall time.Time) (tea.Model, tea.Cmd) {
	if !m.lastWall.IsZero() && !m.gameState.Paused && !m.gameState.GameOver {
		gap := float64(wall.Sub(m.lastWall)) / float64(time.Millisecond)
		m.clockMs += core.Clamp(gap, 0, maxFrameGapMs)
	}
	m.lastWall = wall

	m.gameState = m.game.Step(m.clockMs, m.hold.Keys(wallMs(wall)))

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records the finished run. Failures are logged; the game goes on.
func (m GameModel) saveRun() {
	res := m.game.Result()
	if m.store == nil || res.Score <= 0 {
		return
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:         m.game.ID(),
		Player:         m.player,
		Score:          res.Score,
		DurationMs:     res.DurationMs,
		PeakMultiplier: res.PeakMultiplier,
		OrbsCollected:  res.OrbsCollected,
		HitsTaken:      res.HitsTaken,
		Difficulty:     res.Difficulty,
		Seed:           res.Seed,
	})
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "score", res.Score, "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "game", m.game.ID(), "player", m.player, "score", res.Score)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".neondodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

func wallMs(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}

// Run plays a single game in the terminal until the player quits or backs out.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) error {
	model := NewGameModel(game, store, cfg, logger, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
