package wall_maze

import (
	"fmt"
	"image"
	"image/color"
)

// The number of pixels across, in a square cell, not counting the shared
// wall pixels on one side. Must be at least 5.
const cellPixels = 9

// Satisfies the image.Image interface, drawing a Layout with black walls on a
// white background. Create using NewImage.
type Image struct {
	width  int
	height int
	// Which wall segments are present, indexed by the vertex at the top (for
	// vertical segments) or left (for horizontal segments) end.
	vertical   []bool
	horizontal []bool
	// Whether any present wall touches each vertex.
	corners []bool
	// Whether each cell is on the solution path.
	onPath   []bool
	entrance *Opening
	exit     *Opening
}

// Prepares an image of the given layout. If showSolution is set, the cells
// along the path from the entrance to the exit are highlighted.
func NewImage(l *Layout, showSolution bool) (*Image, error) {
	if (l.Width < 1) || (l.Height < 1) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, l.Width,
			l.Height)
	}
	vertexCount := l.VertexCount()
	toReturn := &Image{
		width:      l.Width,
		height:     l.Height,
		vertical:   make([]bool, vertexCount),
		horizontal: make([]bool, vertexCount),
		corners:    make([]bool, vertexCount),
		onPath:     make([]bool, l.CellCount()),
		entrance:   l.Entrance,
		exit:       l.Exit,
	}
	toReturn.addWalls(l.InteriorWalls)
	toReturn.addWalls(l.PerimeterWalls)
	if !showSolution {
		return toReturn, nil
	}
	path, e := l.Solve()
	if e != nil {
		return nil, fmt.Errorf("Error finding solution: %w", e)
	}
	for _, cell := range path {
		toReturn.onPath[cell] = true
	}
	return toReturn, nil
}

// Records the segments of every wall that's still standing.
func (m *Image) addWalls(walls []Wall) {
	for i := range walls {
		w := &(walls[i])
		if w.Open {
			continue
		}
		if (w.Vertex2 - w.Vertex1) == (m.width + 1) {
			m.vertical[w.Vertex1] = true
		} else {
			m.horizontal[w.Vertex1] = true
		}
		m.corners[w.Vertex1] = true
		m.corners[w.Vertex2] = true
	}
}

func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width*cellPixels+1, m.height*cellPixels+1)
}

// The color used for cells on the solution path.
var pathColor = color.RGBA{
	R: 230,
	G: 20,
	B: 20,
	A: 255,
}

func (m *Image) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x > m.width*cellPixels) ||
		(y > m.height*cellPixels) {
		return color.Transparent
	}
	col := x / cellPixels
	row := y / cellPixels
	xOffset := x % cellPixels
	yOffset := y % cellPixels
	vertex := VertexIndex(col, row, m.width)
	if (xOffset == 0) && (yOffset == 0) {
		if m.corners[vertex] {
			return color.Black
		}
		return color.White
	}
	if xOffset == 0 {
		if m.vertical[vertex] {
			return color.Black
		}
		return color.White
	}
	if yOffset == 0 {
		if m.horizontal[vertex] {
			return color.Black
		}
		return color.White
	}
	// We're strictly inside a cell here, which only gets colored if it's on
	// the solution path and we're more than a pixel away from its walls.
	if (xOffset < 2) || (xOffset > (cellPixels - 2)) || (yOffset < 2) ||
		(yOffset > (cellPixels - 2)) {
		return color.White
	}
	if m.onPath[CellIndex(col, row, m.width)] {
		return pathColor
	}
	return color.White
}

// Returns the pixel at the middle of the gap left by the given opening.
func (m *Image) OpeningPoint(o *Opening) image.Point {
	col, row := CellPosition(o.Cell, m.width)
	left := col * cellPixels
	top := row * cellPixels
	half := cellPixels / 2
	switch o.Side {
	case North:
		return image.Pt(left+half, top)
	case South:
		return image.Pt(left+half, top+cellPixels)
	case West:
		return image.Pt(left, top+half)
	}
	return image.Pt(left+cellPixels, top+half)
}

// Returns the pixel at the middle of the entrance, and false if the maze has
// no entrance.
func (m *Image) EntrancePoint() (image.Point, bool) {
	if m.entrance == nil {
		return image.Point{}, false
	}
	return m.OpeningPoint(m.entrance), true
}

// Returns the pixel at the middle of the exit, and false if the maze has no
// exit.
func (m *Image) ExitPoint() (image.Point, bool) {
	if m.exit == nil {
		return image.Point{}, false
	}
	return m.OpeningPoint(m.exit), true
}

// Returns the angle, in degrees counterclockwise from pointing right, of an
// arrow pointing out of the maze through the given opening.
func OutwardAngle(side Side) float32 {
	switch side {
	case North:
		return 90
	case West:
		return 180
	case South:
		return 270
	}
	return 0
}
