package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebalakin/goldtris/internal/core"
	"github.com/ebalakin/goldtris/internal/registry"
	"github.com/ebalakin/goldtris/internal/storage"
)

// lineCounter is implemented by games that track cleared rows,
// so finished games can be recorded with their line count.
type lineCounter interface {
	Lines() int
}

// reseeder is implemented by games that can swap their random source
// without resetting state, so a restart deals a fresh piece sequence
// while session-held values (the high score) survive.
type reseeder interface {
	Reseed(seed int64)
}

// GameModel is the Bubble Tea model that runs a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	toScores   bool // user asked for the scoreboard
	scoreSaved bool // record already written for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Scoreboard is reachable while paused or after game over.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.toScores = true
		m.inputFrame.Clear()
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the render buffer and the size check react to the new dimensions.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart stays an in-game action so the session high score survives;
	// only the piece sequence gets a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		if r, ok := m.game.(reseeder); ok {
			r.Reseed(m.config.Seed)
		}
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished game once.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			lines := 0
			if lc, ok := m.game.(lineCounter); ok {
				lines = lc.Lines()
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveGame(m.gameState.Score, lines, m.gameState.Level)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user asked to see the scoreboard.
func (m GameModel) WantsScoreboard() bool {
	return m.toScores
}

// clearScoreboardRequest resets the scoreboard flag after the switch.
func (m *GameModel) clearScoreboardRequest() {
	m.toScores = false
}

// Run starts the Bubble Tea program with a session wrapping the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
