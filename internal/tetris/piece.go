// Package tetris implements the pure state-transition engine for the
// falling-block game: the immutable grid and piece model, the action
// reducer, collision checking, line clearing, and scoring. It has no
// platform dependencies and is fully deterministic given a seeded
// generator, which keeps every rule unit-testable.
package tetris

import "github.com/ebalakin/goldtris/internal/core"

// Board dimensions, fixed for the process lifetime.
const (
	Width  = 10
	Height = 20
)

// Spawn column offsets. Standard pieces are centered on the board; the
// gold piece keeps its own historical offset.
const (
	spawnOffset     = (Width - 2) / 2
	goldSpawnOffset = (Width - 10) / 2
)

// goldChance is the inclusive threshold of the [0,100] roll that
// substitutes the gold piece for a standard one.
const goldChance = 5

// Block is a single occupied cell of a piece, in grid coordinates
// (column x, row y; row 0 is the top of the board).
type Block struct {
	X, Y int
}

// Piece is a rigid group of four colored blocks that moves and rotates
// as one unit. Pieces are values: every transform returns a new Piece.
type Piece struct {
	Blocks [4]Block
	Color  core.Color
	Gold   bool
}

// shapes is the fixed catalog of the seven standard tetriminoes, defined
// as relative block offsets from the spawn origin plus a color tag.
var shapes = [7]Piece{
	{Blocks: [4]Block{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Color: core.ColorCyan},    // I
	{Blocks: [4]Block{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color: core.ColorYellow},  // O
	{Blocks: [4]Block{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: core.ColorMagenta}, // T
	{Blocks: [4]Block{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, Color: core.ColorGreen},   // S
	{Blocks: [4]Block{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Color: core.ColorRed},     // Z
	{Blocks: [4]Block{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: core.ColorBlue},    // J
	{Blocks: [4]Block{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: core.ColorOrange},  // L
}

// goldShape is the single fixed bonus piece template. Line clears are
// matched against these exact coordinates (after the gold spawn offset),
// not against the gold piece actually in play.
var goldShape = Piece{
	Blocks: [4]Block{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
	Color:  core.ColorGold,
	Gold:   true,
}

// GoldTemplate returns the gold piece as it spawns. ClearLines uses its
// recorded coordinates for bonus-line detection.
func GoldTemplate() Piece {
	return goldShape.Translated(goldSpawnOffset, 0)
}

// Translated returns a copy of the piece shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	for i := range p.Blocks {
		p.Blocks[i].X += dx
		p.Blocks[i].Y += dy
	}
	return p
}

// Rotated returns the piece rotated 90 degrees clockwise about its first
// block. The first block is the pivot and stays in place.
func (p Piece) Rotated() Piece {
	pivot := p.Blocks[0]
	for i := range p.Blocks {
		x, y := p.Blocks[i].X, p.Blocks[i].Y
		p.Blocks[i].X = pivot.X - (y - pivot.Y)
		p.Blocks[i].Y = pivot.Y + (x - pivot.X)
	}
	return p
}

// Generator produces new pieces from an explicit seeded random source.
// Threading the LCG through the generator (rather than using ambient
// package-level randomness) keeps piece sequences reproducible.
type Generator struct {
	rng *core.LCG
}

// NewGenerator creates a piece generator backed by the given LCG.
func NewGenerator(rng *core.LCG) *Generator {
	return &Generator{rng: rng}
}

// Next returns a freshly spawned piece at row 0. With a ~5% chance
// (uniform roll over 0..100, values <= 5) it returns the gold bonus
// piece instead of a standard shape.
func (g *Generator) Next() Piece {
	if g.rng.Intn(101) <= goldChance {
		return GoldTemplate()
	}
	shape := shapes[g.rng.Intn(len(shapes))]
	return shape.Translated(spawnOffset, 0)
}
