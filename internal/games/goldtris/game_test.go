package goldtris

import (
	"testing"

	"github.com/ebalakin/goldtris/internal/core"
	"github.com/ebalakin/goldtris/internal/tetris"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch {
		case i%37 == 0:
			input.Set(core.ActionLeft)
		case i%53 == 0:
			input.Set(core.ActionRotate)
		case i%71 == 0:
			input.Set(core.ActionHardDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("same-seed games diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestGravityAdvancesPiece(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	startY := g.state.Current.Blocks[0].Y
	empty := core.NewInputFrame()

	// One full gravity period must move the piece down one row.
	for i := 0; i < g.gravityTicks; i++ {
		g.Step(empty)
	}

	if got := g.state.Current.Blocks[0].Y; got != startY+1 {
		t.Errorf("piece row = %d after one gravity period, want %d", got, startY+1)
	}
}

func TestGravitySpeedsUpWithLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	slow := g.gravityTicks

	// Simulate a scoring jump past the level threshold.
	g.state.Score = 3200
	g.state.Level = tetris.LevelForScore(g.state.Score)
	g.Step(core.NewInputFrame())

	if g.gravityTicks >= slow {
		t.Errorf("gravity ticks = %d at level %d, want < %d", g.gravityTicks, g.state.Level, slow)
	}
}

func TestPauseStopsGravity(t *testing.T) {
	g := New()
	g.Reset(testConfig(13))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause action did not pause")
	}

	before := g.state.Current
	empty := core.NewInputFrame()
	for i := 0; i < g.gravityTicks*3; i++ {
		g.Step(empty)
	}
	if g.state.Current != before {
		t.Error("piece moved while paused")
	}
}

func TestRestartPreservesSessionHighScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(17))

	g.state.Score = 900
	g.state.HighScore = 900
	g.state.GameOver = true

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart did not clear game over")
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d after restart, want 0", g.State().Score)
	}
	if g.HighScore() != 900 {
		t.Errorf("high score = %d after restart, want 900", g.HighScore())
	}
}

func TestReseedKeepsStateDealsNewSequence(t *testing.T) {
	g := New()
	g.Reset(testConfig(29))

	before := g.Snapshot()
	g.Reseed(31)
	if got := g.Snapshot(); got != before {
		t.Fatalf("Reseed changed game state:\ngot  %+v\nwant %+v", got, before)
	}

	g.state.Score = 700
	g.state.HighScore = 700
	g.state.GameOver = true

	// A restart after reseeding draws from the new generator and keeps
	// the session high score.
	twin := tetris.NewGenerator(core.NewLCG(31))
	wantCurrent := twin.Next()
	wantNext := twin.Next()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.HighScore() != 700 {
		t.Errorf("high score = %d after restart, want 700", g.HighScore())
	}
	if g.state.Current != wantCurrent || g.state.Next != wantNext {
		t.Error("restart did not draw from the reseeded generator")
	}
}

func TestGhostRestsOnStack(t *testing.T) {
	g := New()
	g.Reset(testConfig(19))

	ghost := g.ghost()
	if tetris.Collides(ghost, g.state.Grid) {
		t.Error("ghost overlaps the stack")
	}
	if !tetris.Collides(ghost.Translated(0, 1), g.state.Grid) {
		t.Error("ghost is not resting: one more row should collide")
	}
}

func TestRenderSmokeAndHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig(23))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := screen.Row(0); len(got) == 0 || got[:9] != " Goldtris" {
		t.Errorf("HUD row = %q", got)
	}

	// The well border must be present.
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Rune == '┌' {
				found = true
			}
		}
	}
	if !found {
		t.Error("board border not rendered")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.State().Paused {
		t.Error("tiny screen should report paused")
	}

	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)
	after := g.Snapshot()

	if before.StackCells != after.StackCells {
		t.Error("game advanced despite too-small screen")
	}
}
