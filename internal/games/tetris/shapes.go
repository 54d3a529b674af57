// Package tetris implements the falling-block puzzle engine: the shape catalog,
// the well grid, the active piece and the session that ties them together.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies a tetromino type. Zero means an empty cell; 1..7 are the
// catalog entries in order I, J, L, O, S, T, Z.
type Kind uint8

const (
	Empty Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Shape is an N×N cell matrix (N in 2..4). Non-zero cells belong to the piece.
type Shape [][]Kind

// catalog holds the rotation-0 templates, indexed by Kind-1.
var catalog = [...]Shape{
	{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	{
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	{
		{4, 4},
		{4, 4},
	},
	{
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	{
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	{
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapesCount returns the number of piece types in the catalog.
func ShapesCount() int {
	return len(catalog)
}

// ShapeTemplate returns a copy of the rotation-0 matrix for catalog index 0..6.
// It returns nil for an index outside the catalog.
func ShapeTemplate(index int) Shape {
	if index < 0 || index >= len(catalog) {
		return nil
	}
	return catalog[index].Clone()
}

// Size returns N for an N×N shape.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]Kind(nil), s[y]...)
	}
	return out
}

// Equal reports whether two shapes hold the same cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

var kindLetters = [...]string{"", "I", "J", "L", "O", "S", "T", "Z"}

// String returns the piece letter, or "." for an empty cell.
func (k Kind) String() string {
	if k == Empty {
		return "."
	}
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return "?"
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Color returns the display color for a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}
