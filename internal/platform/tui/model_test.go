package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebalakin/goldtris/internal/core"
)

// stubGame records how the platform drives it.
type stubGame struct {
	resets   int
	reseeds  int
	restarts int
	state    core.GameState
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)      {}
func (g *stubGame) State() core.GameState        { return g.state }
func (g *stubGame) Reseed(seed int64)            { g.reseeds++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restarts++
		g.state.GameOver = false
	}
	return core.StepResult{State: g.state}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// A game-over restart must reach the game as an action, not as a Reset:
// the game holds the session high score and only survives it through its
// own restart handling. Only the seed is renewed.
func TestGameOverRestartGoesThroughStep(t *testing.T) {
	game := &stubGame{state: core.GameState{GameOver: true, Score: 500}}
	m := NewGameModel(game, nil, core.DefaultConfig())

	m.Init()

	// First tick: the model observes the game-over state.
	model, _ := m.Update(TickMsg{})
	m = model.(GameModel)

	// Press r, then let the next tick process the frame.
	model, _ = m.Update(keyMsg('r'))
	m = model.(GameModel)
	model, _ = m.Update(TickMsg{})
	m = model.(GameModel)

	if game.resets != 1 {
		t.Errorf("Reset called %d times, want 1 (restart must not reset the game)", game.resets)
	}
	if game.restarts != 1 {
		t.Errorf("restart actions delivered to Step = %d, want 1", game.restarts)
	}
	if game.reseeds != 1 {
		t.Errorf("Reseed called %d times, want 1", game.reseeds)
	}
	if m.gameState.GameOver {
		t.Error("model still reports game over after restart")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, core.DefaultConfig())

	m.Init()

	model, _ := m.Update(keyMsg('r'))
	m = model.(GameModel)
	model, _ = m.Update(TickMsg{})
	m = model.(GameModel)

	if game.reseeds != 0 {
		t.Errorf("Reseed called %d times while playing, want 0", game.reseeds)
	}
	// The action itself still flows to the game; the reducer decides
	// what a mid-game restart means.
	if game.restarts != 1 {
		t.Errorf("restart actions delivered to Step = %d, want 1", game.restarts)
	}
}
