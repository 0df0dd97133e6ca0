package goldtris

import (
	"fmt"

	"github.com/ebalakin/goldtris/internal/core"
	"github.com/ebalakin/goldtris/internal/tetris"
)

// Board layout. Each grid cell renders two characters wide so the well
// has a roughly square aspect in a terminal.
const (
	cellW     = 2
	hudHeight = 2
	boardW    = tetris.Width*cellW + 2 // plus border
	boardH    = tetris.Height + 2
	sidebarW  = 14

	minScreenW = boardW + sidebarW
	minScreenH = boardH + hudHeight
)

// Render draws the HUD, the well with the landed stack, the current and
// ghost pieces, the next-piece preview, and any status overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boardX := (dst.Width() - boardW - sidebarW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight

	dst.DrawBox(boardX, boardY, boardW, boardH)

	// Landed stack.
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			if g.state.Grid[y][x] {
				drawCell(dst, boardX, boardY, x, y, '█', core.ColorGray)
			}
		}
	}

	if !g.state.GameOver {
		if g.settings.Display.ShowGhost {
			for _, b := range g.ghost().Blocks {
				if !blockOnBoard(b) {
					continue
				}
				drawCell(dst, boardX, boardY, b.X, b.Y, '░', core.ColorGray)
			}
		}
		for _, b := range g.state.Current.Blocks {
			if !blockOnBoard(b) {
				continue
			}
			drawCell(dst, boardX, boardY, b.X, b.Y, '█', g.state.Current.Color)
		}
	}

	if g.settings.Display.ShowNext {
		g.renderPreview(dst, boardX+boardW+2, boardY)
	}

	switch {
	case g.state.GameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.state.Score))
	case g.state.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Goldtris  Score: %d  Level: %d  Lines: %d  High: %d",
		g.state.Score, g.state.Level, g.state.Lines, g.state.HighScore)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPreview draws the next-piece box to the right of the well.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	dst.DrawText(x+1, y, "NEXT")
	dst.DrawBox(x, y+1, 4*cellW+2, 5)

	// Normalize the preview to its own origin.
	minX, minY := tetris.Width, tetris.Height
	for _, b := range g.state.Next.Blocks {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
	}
	for _, b := range g.state.Next.Blocks {
		px := x + 1 + (b.X-minX)*cellW
		py := y + 2 + (b.Y - minY)
		for i := 0; i < cellW; i++ {
			dst.SetCell(px+i, py, '█', g.state.Next.Color)
		}
	}
}

// drawCell fills one grid cell inside the well border.
func drawCell(dst *core.Screen, boardX, boardY, x, y int, r rune, c core.Color) {
	px := boardX + 1 + x*cellW
	py := boardY + 1 + y
	for i := 0; i < cellW; i++ {
		dst.SetCell(px+i, py, r, c)
	}
}

func blockOnBoard(b tetris.Block) bool {
	return b.X >= 0 && b.X < tetris.Width && b.Y >= 0 && b.Y < tetris.Height
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
