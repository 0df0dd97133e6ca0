// Package goldtris adapts the pure tetris engine to the platform loop:
// it folds per-tick input frames into reducer actions, schedules gravity
// from the current level, and renders the board to a screen buffer.
package goldtris

import (
	"time"

	"github.com/ebalakin/goldtris/internal/config"
	"github.com/ebalakin/goldtris/internal/core"
	"github.com/ebalakin/goldtris/internal/registry"
	"github.com/ebalakin/goldtris/internal/tetris"
)

// Game implements registry.Game on top of the tetris reducer.
type Game struct {
	settings config.Config
	gen      *tetris.Generator
	state    tetris.State
	tick     uint64

	tickRate     int
	gravityTicks int // simulation ticks between gravity steps
	gravityCount int
	gravityLevel int // level the schedule was computed for

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level options, set by the CLI before the game is created.
var (
	configPath    string
	ghostOverride *bool
)

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetGhostOverride forces the ghost piece on or off, overriding the
// config file for the next Reset.
func SetGhostOverride(enabled bool) {
	ghostOverride = &enabled
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("goldtris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "goldtris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Goldtris"
}

// Reset initializes/restarts the game from the runtime config.
// The seed fully determines the piece sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	settings, err := config.Load(configPath)
	if err != nil {
		settings = config.Default()
	}
	if ghostOverride != nil {
		settings.Display.ShowGhost = *ghostOverride
	}
	g.settings = settings

	g.gen = tetris.NewGenerator(core.NewLCG(cfg.Seed))
	g.state = tetris.NewState(g.gen)
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.gravityCount = 0
	g.reschedule()

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// Reseed replaces the piece generator without touching game state, so a
// restart after game over deals a fresh sequence while the session high
// score survives the reducer's Restart.
func (g *Game) Reseed(seed int64) {
	g.gen = tetris.NewGenerator(core.NewLCG(seed))
}

// reschedule recomputes the gravity cadence for the current level:
// base * factor^(level-1), converted to whole simulation ticks.
func (g *Game) reschedule() {
	interval := tetris.GravityInterval(g.state.Level, g.settings.BaseInterval(), g.settings.Timing.SpeedFactor)
	ticks := int(interval * time.Duration(g.tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	g.gravityTicks = ticks
	g.gravityLevel = g.state.Level
}

// Step advances the simulation by one tick. Input actions are applied in
// a fixed order so simultaneous key presses fold into the state
// deterministically, then gravity fires on its level-derived cadence.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.state = tetris.Reduce(g.state, tetris.Restart, g.gen)
		g.gravityCount = 0
	}
	if in.Has(core.ActionPause) {
		g.state = tetris.Reduce(g.state, tetris.TogglePause, g.gen)
	}
	if in.Has(core.ActionLeft) {
		g.state = tetris.Reduce(g.state, tetris.MoveLeft, g.gen)
	}
	if in.Has(core.ActionRight) {
		g.state = tetris.Reduce(g.state, tetris.MoveRight, g.gen)
	}
	if in.Has(core.ActionRotate) {
		g.state = tetris.Reduce(g.state, tetris.Rotate, g.gen)
	}
	if in.Has(core.ActionSoftDrop) {
		g.state = tetris.Reduce(g.state, tetris.SoftDrop, g.gen)
	}
	if in.Has(core.ActionHardDrop) {
		g.state = tetris.Reduce(g.state, tetris.HardDrop, g.gen)
		g.gravityCount = 0
	}

	if !g.state.GameOver && !g.state.Paused {
		g.gravityCount++
		if g.gravityCount >= g.gravityTicks {
			g.gravityCount = 0
			g.state = tetris.Reduce(g.state, tetris.Tick, g.gen)
		}
	}

	if g.state.Level != g.gravityLevel {
		g.reschedule()
	}

	return core.StepResult{State: g.State()}
}

// checkScreenSize verifies the terminal can fit the board plus HUD.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// ghost returns the current piece dropped to its resting position.
// Computed with the same collision predicate the reducer uses.
func (g *Game) ghost() tetris.Piece {
	p := g.state.Current
	for !tetris.Collides(p.Translated(0, 1), g.state.Grid) {
		p = p.Translated(0, 1)
	}
	return p
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.GameOver,
		Paused:   g.state.Paused || g.tooSmall,
	}
}

// Lines returns the total rows cleared this game (for score records).
func (g *Game) Lines() int {
	return g.state.Lines
}

// HighScore returns the best score seen this session.
func (g *Game) HighScore() int {
	return g.state.HighScore
}
