package goldtris

import "github.com/ebalakin/goldtris/internal/tetris"

// Phase is the coarse state the game is in.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick          uint64
	Score         int
	Lines         int
	Level         int
	HighScore     int
	CurrentBlocks [4]tetris.Block
	CurrentGold   bool
	NextBlocks    [4]tetris.Block
	NextGold      bool
	StackCells    int
	GravityTicks  int
	Phase         Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.state.GameOver:
		phase = PhaseGameOver
	case g.state.Paused:
		phase = PhasePaused
	}

	cells := 0
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			if g.state.Grid[y][x] {
				cells++
			}
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Score:         g.state.Score,
		Lines:         g.state.Lines,
		Level:         g.state.Level,
		HighScore:     g.state.HighScore,
		CurrentBlocks: g.state.Current.Blocks,
		CurrentGold:   g.state.Current.Gold,
		NextBlocks:    g.state.Next.Blocks,
		NextGold:      g.state.Next.Gold,
		StackCells:    cells,
		GravityTicks:  g.gravityTicks,
		Phase:         phase,
	}
}
