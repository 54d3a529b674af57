package tetris

import "errors"

// Well dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// ErrCollision is returned by Merge when the piece overlaps the well.
var ErrCollision = errors.New("tetris: piece collides with grid")

// Grid is the well: Height rows of Width cells, row 0 at the top.
// It is a value type; copying a Grid copies every cell.
type Grid [Height][Width]Kind

// Cell returns the cell at column x, row y, or Empty when out of range.
func (g Grid) Cell(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}
	return g[y][x]
}

// Collides reports whether any occupied cell of p lands outside the
// columns [0, Width), at or below row Height, or on an occupied cell.
// Rows above the top are open so a piece can hang over the well.
func (g *Grid) Collides(p *Piece) bool {
	for y, row := range p.Shape {
		for x, v := range row {
			if v == Empty {
				continue
			}
			bx, by := p.X+x, p.Y+y
			if bx < 0 || bx >= Width || by >= Height {
				return true
			}
			if by >= 0 && g[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece's kind into every cell it occupies.
// A colliding piece is rejected with ErrCollision and the grid is untouched.
func (g *Grid) Merge(p *Piece) error {
	if g.Collides(p) {
		return ErrCollision
	}
	for y, row := range p.Shape {
		for x, v := range row {
			if v == Empty || p.Y+y < 0 {
				continue
			}
			g[p.Y+y][p.X+x] = p.Kind
		}
	}
	return nil
}

// ClearFullLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (g *Grid) ClearFullLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !g.rowFull(y) {
			y--
			continue
		}
		// Same index again: the row that slid down may be full too.
		copy(g[1:y+1], g[0:y])
		g[0] = [Width]Kind{}
		cleared++
	}
	return cleared
}

func (g *Grid) rowFull(y int) bool {
	for _, v := range g[y] {
		if v == Empty {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Rows returns a copy of the grid as a slice of rows.
func (g Grid) Rows() [][]Kind {
	rows := make([][]Kind, Height)
	for y := range g {
		rows[y] = append([]Kind(nil), g[y][:]...)
	}
	return rows
}

// Filled returns the number of occupied cells.
func (g Grid) Filled() int {
	n := 0
	for y := range g {
		for _, v := range g[y] {
			if v != Empty {
				n++
			}
		}
	}
	return n
}
