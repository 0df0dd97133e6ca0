package tetris

// Action is a discrete state-transforming input. Keyboard events and the
// gravity timer are mapped onto these by the platform and folded over the
// state one at a time, in arrival order.
type Action int

const (
	Tick Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Restart
	TogglePause
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Tick:
		return "Tick"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case Rotate:
		return "Rotate"
	case HardDrop:
		return "HardDrop"
	case Restart:
		return "Restart"
	case TogglePause:
		return "TogglePause"
	default:
		return "Unknown"
	}
}

// State is the complete game state. It is an immutable value: Reduce
// never mutates its input, every transition produces a fresh State and
// the previous one is simply discarded. Consumers (the renderer) only
// ever see fully-formed snapshots.
type State struct {
	Grid      Grid
	Current   Piece
	Next      Piece
	Score     int
	Lines     int // total rows cleared this game
	Level     int
	HighScore int
	GameOver  bool
	Paused    bool
}

// NewState creates the initial state: empty grid, two freshly generated
// pieces, score 0, level 1, not paused, not over. HighScore starts at 0;
// Restart carries it over from the prior state.
func NewState(gen *Generator) State {
	return State{
		Current: gen.Next(),
		Next:    gen.Next(),
		Level:   1,
	}
}

// Reduce applies one action to the state and returns the successor state.
// Invalid moves are absorbed as no-ops (the input state is returned
// unchanged); nothing here blocks, fails, or panics in normal operation.
// After game over every action except Restart is a no-op.
func Reduce(s State, a Action, gen *Generator) State {
	if s.GameOver && a != Restart {
		return s
	}

	switch a {
	case Restart:
		next := NewState(gen)
		next.HighScore = s.HighScore
		return next

	case TogglePause:
		s.Paused = !s.Paused
		return s
	}

	if s.Paused {
		return s
	}

	switch a {
	case Tick:
		return descend(s, gen, true)

	case SoftDrop:
		return descend(s, gen, false)

	case MoveLeft:
		return shift(s, -1)

	case MoveRight:
		return shift(s, 1)

	case Rotate:
		rotated := s.Current.Rotated()
		if ExceedsBounds(rotated) || Collides(rotated, s.Grid) {
			return s
		}
		s.Current = rotated
		return s

	case HardDrop:
		dropped := s.Current
		for !Collides(dropped.Translated(0, 1), s.Grid) {
			dropped = dropped.Translated(0, 1)
		}
		return land(s, dropped, gen)
	}

	return s
}

// shift moves the current piece one column sideways, rejecting moves that
// would leave the board or overlap landed blocks.
func shift(s State, dx int) State {
	moved := s.Current.Translated(dx, 0)
	if ExceedsBounds(moved) || Collides(moved, s.Grid) {
		return s
	}
	s.Current = moved
	return s
}

// descend moves the current piece down one row, landing it when the move
// collides. On a plain gravity tick the Next preview is regenerated even
// without a landing; historical behavior, kept as-is.
func descend(s State, gen *Generator, regenPreview bool) State {
	moved := s.Current.Translated(0, 1)
	if Collides(moved, s.Grid) {
		return land(s, s.Current, gen)
	}
	s.Current = moved
	if regenPreview {
		s.Next = gen.Next()
	}
	return s
}

// land runs the landing sequence: merge the piece into the grid, clear
// complete rows, apply scoring and leveling, promote the preview piece
// and generate a new one. If the promoted piece immediately collides the
// game is over.
func land(s State, p Piece, gen *Generator) State {
	placed := Place(p, s.Grid)
	res := ClearLines(placed)

	s.Grid = res.Grid
	s.Lines += res.Lines
	s.Score += ScoreDelta(res)
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	s.Level = LevelForScore(s.Score)

	s.Current = s.Next
	s.Next = gen.Next()
	if Collides(s.Current, s.Grid) {
		s.GameOver = true
	}
	return s
}
