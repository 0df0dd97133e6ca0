package tetris

// Collides reports whether the piece has landed on the floor or overlaps
// an occupied grid cell. It deliberately does not reject negative rows or
// out-of-range columns (those cells read as empty); horizontal legality
// is ExceedsBounds' job.
func Collides(p Piece, g Grid) bool {
	for _, b := range p.Blocks {
		if b.Y >= Height {
			return true
		}
		if b.Y >= 0 && b.X >= 0 && b.X < Width && g[b.Y][b.X] {
			return true
		}
	}
	return false
}

// ExceedsBounds reports whether any block sits outside the playable
// columns or below the floor. Used to validate rotations, which can push
// blocks through the side walls independent of vertical collision.
func ExceedsBounds(p Piece) bool {
	for _, b := range p.Blocks {
		if b.X < 0 || b.X >= Width || b.Y >= Height {
			return true
		}
	}
	return false
}
