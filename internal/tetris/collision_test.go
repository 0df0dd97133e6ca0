package tetris

import "testing"

func pieceAt(blocks [4]Block) Piece {
	return Piece{Blocks: blocks}
}

func TestCollides(t *testing.T) {
	var occupied Grid
	occupied[10][4] = true

	tests := []struct {
		name string
		p    Piece
		g    Grid
		want bool
	}{
		{
			name: "free space",
			p:    pieceAt([4]Block{{3, 5}, {4, 5}, {5, 5}, {4, 6}}),
			want: false,
		},
		{
			name: "below the floor",
			p:    pieceAt([4]Block{{3, 19}, {4, 19}, {5, 19}, {4, 20}}),
			want: true,
		},
		{
			name: "overlaps landed block",
			p:    pieceAt([4]Block{{4, 10}, {5, 10}, {6, 10}, {4, 11}}),
			g:    occupied,
			want: true,
		},
		{
			name: "adjacent to landed block",
			p:    pieceAt([4]Block{{5, 10}, {6, 10}, {7, 10}, {5, 11}}),
			g:    occupied,
			want: false,
		},
		{
			name: "negative row is not a collision",
			p:    pieceAt([4]Block{{4, -1}, {4, 0}, {4, 1}, {4, 2}}),
			want: false,
		},
		{
			name: "outside columns is not a collision",
			p:    pieceAt([4]Block{{-1, 5}, {0, 5}, {1, 5}, {0, 6}}),
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.p, tc.g); got != tc.want {
				t.Errorf("Collides() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExceedsBounds(t *testing.T) {
	tests := []struct {
		name string
		p    Piece
		want bool
	}{
		{
			name: "inside",
			p:    pieceAt([4]Block{{0, 0}, {1, 0}, {2, 0}, {0, 1}}),
			want: false,
		},
		{
			name: "left wall",
			p:    pieceAt([4]Block{{-1, 5}, {0, 5}, {1, 5}, {0, 6}}),
			want: true,
		},
		{
			name: "right wall",
			p:    pieceAt([4]Block{{Width - 2, 5}, {Width - 1, 5}, {Width, 5}, {Width - 1, 6}}),
			want: true,
		},
		{
			name: "below floor",
			p:    pieceAt([4]Block{{3, Height - 1}, {4, Height - 1}, {5, Height - 1}, {4, Height}}),
			want: true,
		},
		{
			name: "negative row allowed",
			p:    pieceAt([4]Block{{4, -2}, {4, -1}, {4, 0}, {4, 1}}),
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExceedsBounds(tc.p); got != tc.want {
				t.Errorf("ExceedsBounds() = %v, want %v", got, tc.want)
			}
		})
	}
}
