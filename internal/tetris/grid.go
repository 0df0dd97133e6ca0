package tetris

import "fmt"

// Grid is the landed-block field: true means occupied. The fixed array
// type makes the rectangular invariant (Height rows of exactly Width
// cells) hold by construction, and gives the grid value semantics so
// every transform returns an independent snapshot.
type Grid [Height][Width]bool

// Place returns a new grid with every cell under the piece's blocks set
// occupied. The input grid is unchanged. Blocks with a negative row are
// above the visible board (a rotation near the top can legally put a
// block there) and are simply not recorded. A column out of range or a
// row past the floor is a precondition violation and panics: callers
// must only land validated pieces.
func Place(p Piece, g Grid) Grid {
	for _, b := range p.Blocks {
		if b.Y < 0 {
			continue
		}
		if b.Y >= Height || b.X < 0 || b.X >= Width {
			panic(fmt.Sprintf("tetris: placing block out of grid at (%d, %d)", b.X, b.Y))
		}
		g[b.Y][b.X] = true
	}
	return g
}

// ClearResult is the outcome of a line-clear pass.
type ClearResult struct {
	Grid       Grid // grid after removing complete rows
	Lines      int  // number of complete rows removed
	GoldLine   bool // a cleared row crossed the gold template coordinates
	GoldBlocks int  // gold template blocks on cleared rows (bonus multiplier)
}

// ClearLines removes every complete row, preserving the relative order of
// the remaining rows, and prefixes the grid with as many empty rows so the
// total row count is unchanged (rows fall downward).
//
// Gold detection compares cleared row indexes against the fixed gold
// template's spawn coordinates, not the gold piece actually in play.
func ClearLines(g Grid) ClearResult {
	res := ClearResult{}
	template := GoldTemplate()

	keep := make([][Width]bool, 0, Height)
	for y := 0; y < Height; y++ {
		if rowComplete(g[y]) {
			res.Lines++
			res.GoldBlocks += templateBlocksOnRow(template, y)
			continue
		}
		keep = append(keep, g[y])
	}
	res.GoldLine = res.GoldBlocks > 0

	// Prefix with empty rows; cleared content falls off the top.
	for i, row := range keep {
		res.Grid[res.Lines+i] = row
	}
	return res
}

func rowComplete(row [Width]bool) bool {
	for _, occupied := range row {
		if !occupied {
			return false
		}
	}
	return true
}

func templateBlocksOnRow(template Piece, y int) int {
	n := 0
	for _, b := range template.Blocks {
		if b.Y == y {
			n++
		}
	}
	return n
}
