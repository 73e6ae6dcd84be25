package wall_maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMapping(t *testing.T) {
	width := 7
	for row := 0; row < 4; row++ {
		for col := 0; col < width; col++ {
			c, r := CellPosition(CellIndex(col, row, width), width)
			assert.Equal(t, col, c)
			assert.Equal(t, row, r)
		}
	}
	for row := 0; row <= 4; row++ {
		for col := 0; col <= width; col++ {
			c, r := VertexPosition(VertexIndex(col, row, width), width)
			assert.Equal(t, col, c)
			assert.Equal(t, row, r)
		}
	}
	assert.Equal(t, 9, CellIndex(2, 1, width))
	assert.Equal(t, 10, VertexIndex(2, 1, width))
}

func TestInteriorWallOrder(t *testing.T) {
	// A 3x2 grid:
	//   0 1 2
	//   3 4 5
	walls := newInteriorWalls(3, 2)
	require.Len(t, walls, 7)
	expected := []struct {
		a, b, v1, v2 int
		side         Side
	}{
		{0, 1, 1, 5, East},
		{1, 2, 2, 6, East},
		{3, 4, 5, 9, East},
		{4, 5, 6, 10, East},
		{0, 3, 4, 5, South},
		{1, 4, 5, 6, South},
		{2, 5, 6, 7, South},
	}
	for i, x := range expected {
		w := walls[i]
		assert.Equal(t, x.a, w.CellA, "wall %d", i)
		assert.Equal(t, x.b, w.CellB, "wall %d", i)
		assert.Equal(t, x.v1, w.Vertex1, "wall %d", i)
		assert.Equal(t, x.v2, w.Vertex2, "wall %d", i)
		assert.Equal(t, x.side, w.Side, "wall %d", i)
		assert.True(t, w.Removable)
		assert.False(t, w.Open)
	}
}

func TestPerimeterWalls(t *testing.T) {
	width, height := 4, 3
	walls := newPerimeterWalls(width, height)
	require.Len(t, walls, 2*width+2*height)

	// Every boundary side of every boundary cell appears exactly once.
	type key struct {
		cell int
		side Side
	}
	seen := make(map[key]bool)
	for i, w := range walls {
		assert.Equal(t, w.CellA, w.CellB, "wall %d", i)
		assert.True(t, w.Removable)
		assert.NotEqual(t, w.Vertex1, w.Vertex2)
		k := key{w.CellA, w.Side}
		assert.False(t, seen[k], "duplicate %v", k)
		seen[k] = true
		col, row := CellPosition(w.CellA, width)
		switch w.Side {
		case North:
			assert.Equal(t, 0, row)
		case South:
			assert.Equal(t, height-1, row)
		case West:
			assert.Equal(t, 0, col)
		case East:
			assert.Equal(t, width-1, col)
		}
	}

	assert.Equal(t, Wall{CellA: 0, CellB: 0, Vertex1: 0, Vertex2: 1,
		Side: North, Removable: true}, walls[0])
	assert.Equal(t, Wall{CellA: 8, CellB: 8, Vertex1: 15, Vertex2: 16,
		Side: South, Removable: true}, walls[1])
	assert.Equal(t, Wall{CellA: 0, CellB: 0, Vertex1: 0, Vertex2: 5,
		Side: West, Removable: true}, walls[8])
	assert.Equal(t, Wall{CellA: 3, CellB: 3, Vertex1: 4, Vertex2: 9,
		Side: East, Removable: true}, walls[9])
}

func TestKthRemovable(t *testing.T) {
	walls := []Wall{
		{Removable: true},
		{Removable: false},
		{Removable: true},
		{Removable: true},
	}
	assert.Equal(t, 0, kthRemovable(walls, 0))
	assert.Equal(t, 2, kthRemovable(walls, 1))
	assert.Equal(t, 3, kthRemovable(walls, 2))
	assert.Equal(t, -1, kthRemovable(walls, 3))
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "north", North.String())
	assert.Equal(t, "west", West.String())
	assert.Contains(t, Side(9).String(), "Unknown")
}
