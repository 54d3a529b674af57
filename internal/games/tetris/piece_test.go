package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCatalog(t *testing.T) {
	require.Equal(t, 7, ShapesCount())

	sizes := []int{4, 3, 3, 2, 3, 3, 3}
	for i := 0; i < ShapesCount(); i++ {
		s := ShapeTemplate(i)
		require.Len(t, s, sizes[i], "catalog index %d", i)

		cells := 0
		for _, row := range s {
			require.Len(t, row, sizes[i])
			for _, v := range row {
				if v != Empty {
					assert.Equal(t, Kind(i+1), v, "catalog index %d", i)
					cells++
				}
			}
		}
		assert.Equal(t, 4, cells, "catalog index %d", i)
	}

	assert.Nil(t, ShapeTemplate(-1))
	assert.Nil(t, ShapeTemplate(7))
}

func TestShapeTemplateIsACopy(t *testing.T) {
	s := ShapeTemplate(int(KindO) - 1)
	s[0][0] = Empty
	assert.Equal(t, KindO, ShapeTemplate(int(KindO) - 1)[0][0])
}

func TestSpawnOrigin(t *testing.T) {
	tests := []struct {
		kind Kind
		x    int
	}{
		{KindI, 3},
		{KindJ, 4},
		{KindL, 4},
		{KindO, 4},
		{KindS, 4},
		{KindT, 4},
		{KindZ, 4},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := Spawn(tc.kind)
			require.NotNil(t, p)
			assert.Equal(t, tc.x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, tc.kind, p.Kind)
		})
	}

	assert.Nil(t, Spawn(Empty))
	assert.Nil(t, Spawn(Kind(8)))
}

func TestTranslateStopsAtWalls(t *testing.T) {
	var g Grid
	p := Spawn(KindI) // cells in columns 3..6

	assert.True(t, p.Translate(&g, -3))
	assert.Equal(t, 0, p.X)
	assert.False(t, p.Translate(&g, -1), "column -1 is outside the well")
	assert.Equal(t, 0, p.X)

	assert.True(t, p.Translate(&g, Width-4))
	assert.Equal(t, Width-4, p.X)
	assert.False(t, p.Translate(&g, 1), "column Width is outside the well")
	assert.Equal(t, Width-4, p.X)
}

func TestTranslateBlockedByCell(t *testing.T) {
	var g Grid
	g[1][2] = KindS
	p := Spawn(KindT) // row 1 spans columns 4..6

	assert.True(t, p.Translate(&g, -1))
	assert.False(t, p.Translate(&g, -1))
	assert.Equal(t, 3, p.X)
}

func TestSoftDrop(t *testing.T) {
	var g Grid
	p := Spawn(KindO)

	assert.False(t, p.SoftDrop(&g))
	assert.Equal(t, 1, p.Y)

	p.Y = Height - 2
	assert.True(t, p.SoftDrop(&g))
	assert.Equal(t, Height-2, p.Y, "a locked piece keeps its resting row")
}

func TestRotateClockwise(t *testing.T) {
	var g Grid
	p := Spawn(KindT)
	p.Y = 5

	p.Rotate(&g, RotateCW)
	assert.Equal(t, Shape{
		{0, 6, 0},
		{0, 6, 6},
		{0, 6, 0},
	}, p.Shape)

	p.Rotate(&g, RotateCCW)
	assert.Equal(t, ShapeTemplate(int(KindT)-1), p.Shape)
}

func TestRotateCounterClockwise(t *testing.T) {
	var g Grid
	p := Spawn(KindL)
	p.Y = 5

	p.Rotate(&g, RotateCCW)
	assert.Equal(t, Shape{
		{3, 3, 0},
		{0, 3, 0},
		{0, 3, 0},
	}, p.Shape)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, dir := range []Rotation{RotateCW, RotateCCW} {
		for i := 0; i < ShapesCount(); i++ {
			var g Grid
			p := Spawn(Kind(i + 1))
			p.Y = 8
			want := p.Shape.Clone()

			for r := 0; r < 4; r++ {
				p.Rotate(&g, dir)
				require.False(t, g.Collides(p))
			}
			assert.True(t, want.Equal(p.Shape), "kind %v dir %d", p.Kind, dir)
		}
	}
}

func TestRotateWallKick(t *testing.T) {
	var g Grid
	p := Spawn(KindI)
	p.Y = 5
	p.Rotate(&g, RotateCW) // vertical, in matrix column 2

	for p.Translate(&g, -1) {
	}
	require.Equal(t, -2, p.X, "vertical I flush against the left wall")

	// Turning back puts the bar in columns -2..1; kicks +1 and -2 fail, +3 fits.
	p.Rotate(&g, RotateCCW)

	assert.False(t, g.Collides(p))
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, ShapeTemplate(int(KindI)-1), p.Shape)
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	var g Grid
	p := Spawn(KindT)

	// Fill the top four rows except the cells the piece occupies.
	for y := 0; y < 4; y++ {
		fillRow(&g, y)
	}
	for _, c := range p.Cells() {
		g[c.Y][c.X] = Empty
	}

	before := p.Clone()
	p.Rotate(&g, RotateCW)

	assert.Equal(t, before.Shape, p.Shape)
	assert.Equal(t, before.X, p.X)
	assert.Equal(t, before.Y, p.Y)
	assert.False(t, g.Collides(p))
}

func TestPieceCellsAndClone(t *testing.T) {
	p := Spawn(KindO)
	assert.ElementsMatch(t, []Point{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, p.Cells())

	c := p.Clone()
	c.Shape[0][0] = Empty
	c.X = 0
	assert.Equal(t, KindO, p.Shape[0][0])
	assert.Equal(t, 4, p.X)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", KindI.String())
	assert.Equal(t, "Z", KindZ.String())
	assert.Equal(t, ".", Empty.String())
	assert.Equal(t, "?", Kind(9).String())
}
