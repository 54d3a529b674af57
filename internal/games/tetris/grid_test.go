package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, except ...int) {
	for x := 0; x < Width; x++ {
		g[y][x] = KindZ
	}
	for _, x := range except {
		g[y][x] = Empty
	}
}

func TestCollides(t *testing.T) {
	var blocked Grid
	blocked[10][4] = KindJ

	tests := []struct {
		name     string
		grid     Grid
		x, y     int
		expected bool
	}{
		{"spawn position", Grid{}, 4, 0, false},
		{"left edge inside", Grid{}, 0, 5, false},
		{"right edge inside", Grid{}, Width - 2, 5, false},
		{"past left wall", Grid{}, -1, 5, true},
		{"past right wall", Grid{}, Width - 1, 5, true},
		{"resting on floor", Grid{}, 4, Height - 2, false},
		{"through floor", Grid{}, 4, Height - 1, true},
		{"half above top", Grid{}, 4, -1, false},
		{"fully above top", Grid{}, 4, -5, false},
		{"above top and past wall", Grid{}, -1, -5, true},
		{"overlapping filled cell", blocked, 3, 9, true},
		{"next to filled cell", blocked, 5, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Spawn(KindO)
			p.X, p.Y = tc.x, tc.y
			assert.Equal(t, tc.expected, tc.grid.Collides(p))
		})
	}
}

func TestCollidesIgnoresEmptyShapeCells(t *testing.T) {
	// Only matrix row 1 of the I piece is filled; the empty rows below it may
	// hang past the floor.
	var g Grid
	p := Spawn(KindI)
	p.Y = Height - 2
	assert.False(t, g.Collides(p))

	p.Y = Height - 1
	assert.True(t, g.Collides(p))
}

func TestMerge(t *testing.T) {
	var g Grid
	p := Spawn(KindT)
	p.Y = Height - 2

	require.NoError(t, g.Merge(p))

	for _, c := range p.Cells() {
		assert.Equal(t, KindT, g[c.Y][c.X], "cell %v", c)
	}
	assert.Equal(t, 4, g.Filled())
}

func TestMergeRejectsCollidingPiece(t *testing.T) {
	var g Grid
	g[1][5] = KindI
	before := g

	p := Spawn(KindT)
	err := g.Merge(p)

	assert.ErrorIs(t, err, ErrCollision)
	assert.Equal(t, before, g, "grid must be untouched")
}

func TestMergeSkipsRowsAboveTop(t *testing.T) {
	var g Grid
	p := Spawn(KindO)
	p.Y = -1

	require.NoError(t, g.Merge(p))
	assert.Equal(t, 2, g.Filled())
	assert.Equal(t, KindO, g[0][4])
	assert.Equal(t, KindO, g[0][5])
}

func TestClearFullLinesEmptyGrid(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.ClearFullLines())
	assert.Equal(t, Grid{}, g)
}

func TestClearFullLinesNoneFull(t *testing.T) {
	var g Grid
	for y := 10; y < Height; y++ {
		fillRow(&g, y, y%Width)
	}
	before := g

	assert.Equal(t, 0, g.ClearFullLines())
	assert.Equal(t, before, g)
}

func TestClearFullLinesCompactsDown(t *testing.T) {
	var g Grid
	// Every row gets a distinct gap so rows can be told apart after compaction.
	for y := 0; y < Height; y++ {
		fillRow(&g, y, y%Width)
	}
	fillRow(&g, 5)
	fillRow(&g, 7)
	original := g

	require.Equal(t, 2, g.ClearFullLines())

	var want Grid
	dst := 2
	for y := 0; y < Height; y++ {
		if y == 5 || y == 7 {
			continue
		}
		want[dst] = original[y]
		dst++
	}
	assert.Equal(t, want, g)
	assert.Equal(t, [Width]Kind{}, g[0])
	assert.Equal(t, [Width]Kind{}, g[1])
}

func TestClearFullLinesAdjacentRows(t *testing.T) {
	var g Grid
	fillRow(&g, 16, 3)
	fillRow(&g, 17)
	fillRow(&g, 18)
	fillRow(&g, 19)
	row16 := g[16]

	assert.Equal(t, 3, g.ClearFullLines())
	assert.Equal(t, row16, g[19], "the surviving row lands on the floor")
	assert.Equal(t, Width-1, g.Filled())
}

func TestClearFullLinesTopRow(t *testing.T) {
	var g Grid
	fillRow(&g, 0)

	assert.Equal(t, 1, g.ClearFullLines())
	assert.Equal(t, Grid{}, g)
}

func TestGridResetAndRows(t *testing.T) {
	var g Grid
	fillRow(&g, 19)

	rows := g.Rows()
	require.Len(t, rows, Height)
	rows[19][0] = Empty
	assert.Equal(t, KindZ, g[19][0], "Rows must return a copy")

	g.Reset()
	assert.Equal(t, 0, g.Filled())
}

func TestGridCellOutOfRange(t *testing.T) {
	var g Grid
	fillRow(&g, 0)
	assert.Equal(t, KindZ, g.Cell(0, 0))
	assert.Equal(t, Empty, g.Cell(-1, 0))
	assert.Equal(t, Empty, g.Cell(0, Height))
}
