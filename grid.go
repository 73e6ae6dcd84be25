package wall_maze

import (
	"fmt"
)

// Identifies one of the four sides of a cell. Row 0 is the north edge of the
// grid and column 0 is the west edge.
type Side uint8

const (
	North Side = iota
	East
	South
	West
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Unknown side: %d", uint8(s))
}

// A single wall segment in the maze, either between two adjacent cells or on
// the outer boundary of the grid.
type Wall struct {
	// The cells separated by the wall. For perimeter walls both are the same
	// boundary cell.
	CellA int
	CellB int
	// The logical grid vertices at either end of the wall. See VertexIndex.
	Vertex1 int
	Vertex2 int
	// The side of CellA the wall lies on. Vertical interior walls are always
	// East and horizontal interior walls are always South.
	Side Side
	// True until the wall has been drawn by the generator, whether or not it
	// was knocked down.
	Removable bool
	// True if the wall has been knocked down.
	Open bool
}

// Converts a column and row to a row-major cell index.
func CellIndex(col, row, width int) int {
	return row*width + col
}

// The inverse of CellIndex.
func CellPosition(cell, width int) (col, row int) {
	return cell % width, cell / width
}

// Converts a column and row of a grid corner to a vertex index. A maze that is
// width cells wide has width + 1 vertices in each row.
func VertexIndex(col, row, width int) int {
	return row*(width+1) + col
}

// The inverse of VertexIndex.
func VertexPosition(vertex, width int) (col, row int) {
	return vertex % (width + 1), vertex / (width + 1)
}

// Returns the number of walls between adjacent cells in a width x height grid.
func interiorWallCount(width, height int) int {
	return (width-1)*height + (height-1)*width
}

// Returns the number of boundary wall segments around a width x height grid.
func perimeterWallCount(width, height int) int {
	return 2*width + 2*height
}

// Allocates every interior wall, all initially present and removable. The
// vertical walls come first, in row-major order, followed by the horizontal
// walls, also in row-major order. This order determines which wall is "the
// k-th" removable wall when sampling, so it must not change.
func newInteriorWalls(width, height int) []Wall {
	vertical := (width - 1) * height
	toReturn := make([]Wall, interiorWallCount(width, height))
	for i := 0; i < vertical; i++ {
		col := i % (width - 1)
		row := i / (width - 1)
		cell := CellIndex(col, row, width)
		toReturn[i] = Wall{
			CellA:     cell,
			CellB:     cell + 1,
			Vertex1:   VertexIndex(col+1, row, width),
			Vertex2:   VertexIndex(col+1, row+1, width),
			Side:      East,
			Removable: true,
		}
	}
	for i := vertical; i < len(toReturn); i++ {
		cell := i - vertical
		col, row := CellPosition(cell, width)
		toReturn[i] = Wall{
			CellA:     cell,
			CellB:     cell + width,
			Vertex1:   VertexIndex(col, row+1, width),
			Vertex2:   VertexIndex(col+1, row+1, width),
			Side:      South,
			Removable: true,
		}
	}
	return toReturn
}

// Allocates the walls around the outside of the grid. Entries alternate
// between the north and south edges for each column, then between the west
// and east edges for each row.
func newPerimeterWalls(width, height int) []Wall {
	toReturn := make([]Wall, perimeterWallCount(width, height))
	for col := 0; col < width; col++ {
		north := CellIndex(col, 0, width)
		toReturn[2*col] = Wall{
			CellA:     north,
			CellB:     north,
			Vertex1:   VertexIndex(col, 0, width),
			Vertex2:   VertexIndex(col+1, 0, width),
			Side:      North,
			Removable: true,
		}
		south := CellIndex(col, height-1, width)
		toReturn[2*col+1] = Wall{
			CellA:     south,
			CellB:     south,
			Vertex1:   VertexIndex(col, height, width),
			Vertex2:   VertexIndex(col+1, height, width),
			Side:      South,
			Removable: true,
		}
	}
	for row := 0; row < height; row++ {
		i := width + row
		west := CellIndex(0, row, width)
		toReturn[2*i] = Wall{
			CellA:     west,
			CellB:     west,
			Vertex1:   VertexIndex(0, row, width),
			Vertex2:   VertexIndex(0, row+1, width),
			Side:      West,
			Removable: true,
		}
		east := CellIndex(width-1, row, width)
		toReturn[2*i+1] = Wall{
			CellA:     east,
			CellB:     east,
			Vertex1:   VertexIndex(width, row, width),
			Vertex2:   VertexIndex(width, row+1, width),
			Side:      East,
			Removable: true,
		}
	}
	return toReturn
}

// Returns the index of the k-th wall, counting from 0, that is still
// removable. Returns -1 if there are k or fewer removable walls.
func kthRemovable(walls []Wall, k int) int {
	for i := range walls {
		if !walls[i].Removable {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}
	return -1
}
