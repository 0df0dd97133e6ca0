package tetris

import (
	"testing"

	"github.com/ebalakin/goldtris/internal/core"
)

func TestCatalogShapes(t *testing.T) {
	if len(shapes) != 7 {
		t.Fatalf("catalog has %d shapes, expected 7", len(shapes))
	}

	for i, shape := range shapes {
		seen := make(map[Block]bool)
		for _, b := range shape.Blocks {
			if b.X < 0 || b.Y < 0 {
				t.Errorf("shape %d has negative offset (%d, %d)", i, b.X, b.Y)
			}
			if seen[b] {
				t.Errorf("shape %d has duplicate block (%d, %d)", i, b.X, b.Y)
			}
			seen[b] = true
		}
		if shape.Gold {
			t.Errorf("shape %d must not be gold", i)
		}
		if shape.Color == core.ColorDefault {
			t.Errorf("shape %d has no color", i)
		}
	}
}

func TestSpawnPosition(t *testing.T) {
	gen := NewGenerator(core.NewLCG(1))

	for i := 0; i < 200; i++ {
		p := gen.Next()

		offset := spawnOffset
		if p.Gold {
			offset = goldSpawnOffset
		}

		minX, minY := Width, Height
		for _, b := range p.Blocks {
			if b.X < minX {
				minX = b.X
			}
			if b.Y < minY {
				minY = b.Y
			}
		}
		if minY != 0 {
			t.Errorf("piece %d spawned at row %d, expected 0", i, minY)
		}
		if minX != offset {
			t.Errorf("piece %d spawned at column %d, expected %d (gold=%v)", i, minX, offset, p.Gold)
		}
		if ExceedsBounds(p) {
			t.Errorf("piece %d spawned out of bounds: %+v", i, p.Blocks)
		}
	}
}

func TestGoldPieceFrequency(t *testing.T) {
	gen := NewGenerator(core.NewLCG(42))

	const draws = 20000
	golds := 0
	for i := 0; i < draws; i++ {
		if gen.Next().Gold {
			golds++
		}
	}

	// Expected rate is 6/101 (roll 0..100, <= 5 triggers), about 5.9%.
	ratio := float64(golds) / draws
	if ratio < 0.03 || ratio > 0.10 {
		t.Errorf("gold rate %.4f outside plausible range around 0.059", ratio)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g1 := NewGenerator(core.NewLCG(777))
	g2 := NewGenerator(core.NewLCG(777))

	for i := 0; i < 500; i++ {
		if p1, p2 := g1.Next(), g2.Next(); p1 != p2 {
			t.Fatalf("generators diverged at draw %d: %+v vs %+v", i, p1, p2)
		}
	}
}

func TestTranslated(t *testing.T) {
	p := Piece{Blocks: [4]Block{{0, 0}, {1, 0}, {2, 0}, {0, 1}}, Color: core.ColorRed}
	moved := p.Translated(3, 5)

	want := [4]Block{{3, 5}, {4, 5}, {5, 5}, {3, 6}}
	if moved.Blocks != want {
		t.Errorf("Translated(3, 5) = %+v, want %+v", moved.Blocks, want)
	}
	// Original is untouched.
	if p.Blocks[0] != (Block{0, 0}) {
		t.Error("Translated mutated the receiver")
	}
}

func TestRotatedAboutPivot(t *testing.T) {
	// Pivot at (4, 2); (5, 2) is one step right of the pivot and must end
	// up one step below it: newX = px - (y - py), newY = py + (x - px).
	p := Piece{Blocks: [4]Block{{4, 2}, {5, 2}, {6, 2}, {4, 3}}}
	r := p.Rotated()

	want := [4]Block{{4, 2}, {4, 3}, {4, 4}, {3, 2}}
	if r.Blocks != want {
		t.Errorf("Rotated() = %+v, want %+v", r.Blocks, want)
	}
}

func TestFourRotationsIdentity(t *testing.T) {
	for i, shape := range shapes {
		p := shape.Translated(spawnOffset, 3)
		r := p.Rotated().Rotated().Rotated().Rotated()
		if r != p {
			t.Errorf("shape %d: four rotations changed the piece: %+v vs %+v", i, r.Blocks, p.Blocks)
		}
	}
}

func TestGoldTemplateFixed(t *testing.T) {
	a := GoldTemplate()
	b := GoldTemplate()
	if a != b {
		t.Error("gold template must be a fixed value")
	}
	if !a.Gold || a.Color != core.ColorGold {
		t.Errorf("gold template not tagged gold: %+v", a)
	}

	minX := Width
	for _, blk := range a.Blocks {
		if blk.X < minX {
			minX = blk.X
		}
	}
	if minX != goldSpawnOffset {
		t.Errorf("gold template offset = %d, want %d", minX, goldSpawnOffset)
	}
}
