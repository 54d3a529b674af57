package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout in terminal cells. Each well cell is two characters wide so the
// well looks square in a typical terminal font.
const (
	wellScreenW = Width*2 + 2
	wellScreenH = Height + 2
	panelW      = 14
)

// emptyCell is drawn for unoccupied well cells.
const emptyCell = " ·"

// Render draws the well, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	originX := (dst.Width() - minScreenW) / 2
	originY := (dst.Height() - minScreenH) / 2
	well := core.NewRect(originX, originY, wellScreenW, wellScreenH)

	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+1, well.Y)

	if g.paused {
		g.renderOverlay(dst, "Paused", fmt.Sprintf("Press %s to continue", g.pauseKey()))
	}
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)

	grid := g.session.Grid()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.drawCell(dst, well, x, y, grid[y][x])
		}
	}

	p := g.session.Piece()
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			g.drawCell(dst, well, c.X, c.Y, p.Kind)
		}
	}
}

// drawCell paints well cell (x, y) inside the well border.
func (g *Game) drawCell(dst *core.Screen, well core.Rect, x, y int, k Kind) {
	sx := well.X + 1 + x*2
	sy := well.Y + 1 + y
	if k == Empty {
		dst.DrawTextColor(sx, sy, emptyCell, core.ColorGray)
		return
	}
	dst.DrawTextColor(sx, sy, g.cellChars(), k.Color())
}

func (g *Game) cellChars() string {
	if g.cfg.Display.CellChars == "" {
		return "██"
	}
	return g.cfg.Display.CellChars
}

// pauseKey names the first configured pause key for the overlay hint.
func (g *Game) pauseKey() string {
	if len(g.cfg.Keys.Pause) == 0 {
		return "pause"
	}
	return g.cfg.Keys.Pause[0]
}

// renderPanel draws the score block and per-piece statistics.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	s := g.session
	dst.DrawTextColor(x, y, "T E T R I S", core.ColorCyan)
	dst.DrawText(x, y+2, "Score")
	dst.DrawTextColor(x, y+3, fmt.Sprintf("%d", s.Score()), core.ColorWhite)
	dst.DrawText(x, y+5, "Lines")
	dst.DrawTextColor(x, y+6, fmt.Sprintf("%d", s.Lines()), core.ColorWhite)
	dst.DrawText(x, y+8, "Games")
	dst.DrawTextColor(x, y+9, fmt.Sprintf("%d", s.Games()), core.ColorWhite)

	dst.DrawText(x, y+11, "Pieces")
	for i := 0; i < ShapesCount(); i++ {
		k := Kind(i + 1)
		row := y + 12 + i
		dst.DrawTextColor(x, row, k.String(), k.Color())
		dst.DrawText(x+2, row, fmt.Sprintf("%4d", s.Spawned(k)))
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
