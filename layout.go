package wall_maze

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Returned when an operation needs a maze whose entrance and exit have
// already been carved.
var ErrIncomplete = errors.New("maze generation is incomplete")

// Identifies the perimeter wall that was knocked down to form the entrance or
// exit.
type Opening struct {
	// The index of the wall in the layout's PerimeterWalls.
	Wall int
	// The boundary cell the opening leads into.
	Cell int
	// The side of Cell on which the opening lies.
	Side Side
}

// The finished state of a maze, returned by Generate. It's a plain copy of
// the generator's state, so it can be read freely after generation.
type Layout struct {
	// Width and height are numbers of cells.
	Width  int
	Height int
	// Walls with Open set are gaps. All others should be drawn.
	InteriorWalls  []Wall
	PerimeterWalls []Wall
	// Will be nil if the layout was taken before generation finished.
	Entrance *Opening
	Exit     *Opening
	// The random seed, if the maze was created by NewMazeWithSeed.
	Seed int64
	// The time required to generate the maze.
	GenerationTime time.Duration
}

// A 2D point, in whatever units the caller chose for the cell spacing.
type Point struct {
	X float64
	Y float64
}

// Returns the number of cells in the maze.
func (l *Layout) CellCount() int {
	return l.Width * l.Height
}

// Returns the number of grid vertices, i.e. wall endpoints, in the maze.
func (l *Layout) VertexCount() int {
	return (l.Width + 1) * (l.Height + 1)
}

// Returns the column and row of the given vertex.
func (l *Layout) VertexPosition(vertex int) (col, row int) {
	return VertexPosition(vertex, l.Width)
}

// Maps a vertex to a coordinate, with cells spaced the given distance apart
// and the maze centered on the origin.
func (l *Layout) VertexPoint(vertex int, spacing float64) Point {
	col, row := l.VertexPosition(vertex)
	xOffset := -float64(l.Width) * spacing / 2
	yOffset := -float64(l.Height) * spacing / 2
	return Point{
		X: float64(col)*spacing + xOffset,
		Y: float64(row)*spacing + yOffset,
	}
}

// Returns the number of interior walls that have been knocked down. In a
// finished maze this is always one less than the number of cells.
func (l *Layout) OpenInteriorWalls() int {
	toReturn := 0
	for i := range l.InteriorWalls {
		if l.InteriorWalls[i].Open {
			toReturn++
		}
	}
	return toReturn
}

// Returns the indices of the cells reachable from the given cell in a single
// move, i.e. through an open interior wall.
func (l *Layout) Neighbors(cell int) []int {
	toReturn := make([]int, 0, 4)
	for i := range l.InteriorWalls {
		w := &(l.InteriorWalls[i])
		if !w.Open {
			continue
		}
		if w.CellA == cell {
			toReturn = append(toReturn, w.CellB)
		} else if w.CellB == cell {
			toReturn = append(toReturn, w.CellA)
		}
	}
	return toReturn
}

// Builds an adjacency list for every cell, using only open interior walls.
func (l *Layout) adjacency() [][]int {
	toReturn := make([][]int, l.CellCount())
	for i := range l.InteriorWalls {
		w := &(l.InteriorWalls[i])
		if !w.Open {
			continue
		}
		toReturn[w.CellA] = append(toReturn[w.CellA], w.CellB)
		toReturn[w.CellB] = append(toReturn[w.CellB], w.CellA)
	}
	return toReturn
}

// Returns the cells along the path from the entrance cell to the exit cell,
// inclusive. Since the maze is perfect there is exactly one such path.
func (l *Layout) Solve() ([]int, error) {
	if (l.Entrance == nil) || (l.Exit == nil) {
		return nil, ErrIncomplete
	}
	adjacent := l.adjacency()
	start := l.Entrance.Cell
	end := l.Exit.Cell
	// These will be -1 to indicate unvisited cells.
	parentIndices := make([]int, len(adjacent))
	for i := range parentIndices {
		parentIndices[i] = -1
	}
	parentIndices[start] = start
	queue := make([]int, 0, len(adjacent))
	queue = append(queue, start)
	for len(queue) != 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			break
		}
		for _, next := range adjacent[current] {
			if parentIndices[next] >= 0 {
				continue
			}
			parentIndices[next] = current
			queue = append(queue, next)
		}
	}
	if parentIndices[end] < 0 {
		return nil, fmt.Errorf("Internal error: exit cell %d is unreachable",
			end)
	}
	var reversed []int
	for index := end; index != start; index = parentIndices[index] {
		reversed = append(reversed, index)
	}
	reversed = append(reversed, start)
	toReturn := make([]int, len(reversed))
	for i, v := range reversed {
		toReturn[len(reversed)-1-i] = v
	}
	return toReturn, nil
}

// Returns the wall on the given side of a cell, or nil if the cell's index or
// side is invalid.
func (l *Layout) WallAt(cell int, side Side) *Wall {
	if (cell < 0) || (cell >= l.CellCount()) {
		return nil
	}
	col, row := CellPosition(cell, l.Width)
	vertical := (l.Width - 1) * l.Height
	switch side {
	case North:
		if row == 0 {
			return &(l.PerimeterWalls[2*col])
		}
		return &(l.InteriorWalls[vertical+cell-l.Width])
	case South:
		if row == (l.Height - 1) {
			return &(l.PerimeterWalls[2*col+1])
		}
		return &(l.InteriorWalls[vertical+cell])
	case West:
		if col == 0 {
			return &(l.PerimeterWalls[2*(l.Width+row)])
		}
		return &(l.InteriorWalls[row*(l.Width-1)+col-1])
	case East:
		if col == (l.Width - 1) {
			return &(l.PerimeterWalls[2*(l.Width+row)+1])
		}
		return &(l.InteriorWalls[row*(l.Width-1)+col])
	}
	return nil
}

// Returns true if the wall on the given side of the cell is present.
func (l *Layout) hasWall(cell int, side Side) bool {
	w := l.WallAt(cell, side)
	return (w != nil) && !w.Open
}

// Returns a human-readable string about the maze, for providing debug info
// such as the random seed.
func (l *Layout) Info() string {
	return fmt.Sprintf("%dx%d wall maze with random seed %d, generated in "+
		"%.03f seconds", l.Width, l.Height, l.Seed,
		l.GenerationTime.Seconds())
}

// Draws the maze using ASCII characters.
func (l *Layout) String() string {
	var b strings.Builder
	for row := 0; row < l.Height; row++ {
		// The walls along the north side of the row.
		for col := 0; col < l.Width; col++ {
			if l.hasWall(CellIndex(col, row, l.Width), North) {
				b.WriteString("+---")
			} else {
				b.WriteString("+   ")
			}
		}
		b.WriteString("+\n")
		// The cells themselves, and the walls between them.
		for col := 0; col < l.Width; col++ {
			if l.hasWall(CellIndex(col, row, l.Width), West) {
				b.WriteString("|   ")
			} else {
				b.WriteString("    ")
			}
		}
		if l.hasWall(CellIndex(l.Width-1, row, l.Width), East) {
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	for col := 0; col < l.Width; col++ {
		if l.hasWall(CellIndex(col, l.Height-1, l.Width), South) {
			b.WriteString("+---")
		} else {
			b.WriteString("+   ")
		}
	}
	b.WriteString("+\n")
	return b.String()
}
