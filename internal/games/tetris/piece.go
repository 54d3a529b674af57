package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Rotation is the turning direction passed to Rotate.
type Rotation int

const (
	RotateCW  Rotation = 1
	RotateCCW Rotation = -1
)

// Point is a cell position in the well.
type Point struct {
	X, Y int
}

// Piece is the falling tetromino: a private copy of its shape matrix and the
// well position of the matrix's top-left corner.
type Piece struct {
	Shape Shape
	X, Y  int
	Kind  Kind
}

// Spawn creates a piece of the given kind centered at the top of the well.
// It returns nil for an invalid kind.
func Spawn(kind Kind) *Piece {
	if !kind.Valid() {
		return nil
	}
	shape := ShapeTemplate(int(kind) - 1)
	return &Piece{
		Shape: shape,
		X:     Width/2 - shape.Size()/2,
		Y:     0,
		Kind:  kind,
	}
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Cells returns the well coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, v := range row {
			if v != Empty {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}

// Translate shifts the piece dx columns. A move into a wall or a filled
// cell is rejected: the position is unchanged and false is returned.
func (p *Piece) Translate(g *Grid, dx int) bool {
	p.X += dx
	if g.Collides(p) {
		p.X -= dx
		return false
	}
	return true
}

// SoftDrop moves the piece one row down. When the row below is blocked the
// piece stays put and locked is true; the caller must merge it.
func (p *Piece) SoftDrop(g *Grid) (locked bool) {
	p.Y++
	if g.Collides(p) {
		p.Y--
		return true
	}
	return false
}

// Rotate turns the piece a quarter turn in place. If the turned piece
// overlaps the well it is kicked sideways by +1, -2, +3, ... columns until
// it fits; when the next kick would be wider than the shape the piece is
// restored to exactly its previous shape and position.
func (p *Piece) Rotate(g *Grid, dir Rotation) {
	saved := p.Clone()

	p.Shape.rotate(dir)

	width := p.Shape.Size()
	for offset := 1; g.Collides(p); {
		if core.Abs(offset) > width {
			p.Shape, p.X, p.Y = saved.Shape, saved.X, saved.Y
			return
		}
		p.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -offset + 1
		}
	}
}

// rotate turns the matrix in place: transpose, then mirror the columns for
// a clockwise turn or the rows for a counter-clockwise turn.
func (s Shape) rotate(dir Rotation) {
	n := len(s)
	for y := 0; y < n; y++ {
		for x := 0; x < y; x++ {
			s[x][y], s[y][x] = s[y][x], s[x][y]
		}
	}
	if dir > 0 {
		for _, row := range s {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
