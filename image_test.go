package wall_maze

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	l := scripted2x2(t)
	m, e := NewImage(l, false)
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, 19, 19), m.Bounds())
	assert.Equal(t, color.Transparent, m.At(-1, 0))
	assert.Equal(t, color.Transparent, m.At(19, 0))

	// The west wall touches the top-left corner.
	assert.Equal(t, color.Black, m.At(0, 0))
	// The entrance gap in cell 0's north wall.
	assert.Equal(t, color.White, m.At(4, 0))
	// Cell 1's north wall.
	assert.Equal(t, color.Black, m.At(13, 0))
	// The open wall between cells 0 and 1.
	assert.Equal(t, color.White, m.At(9, 4))
	// The closed wall between cells 1 and 3.
	assert.Equal(t, color.Black, m.At(13, 9))
	// The east perimeter.
	assert.Equal(t, color.Black, m.At(18, 13))
	// The exit gap in cell 2's south wall.
	assert.Equal(t, color.White, m.At(4, 18))

	p, ok := m.EntrancePoint()
	require.True(t, ok)
	assert.Equal(t, image.Pt(4, 0), p)
	p, ok = m.ExitPoint()
	require.True(t, ok)
	assert.Equal(t, image.Pt(4, 18), p)
}

func TestImageSolution(t *testing.T) {
	l := scripted2x2(t)
	m, e := NewImage(l, true)
	require.NoError(t, e)
	// The path goes from cell 0 to cell 2.
	assert.Equal(t, pathColor, m.At(4, 4))
	assert.Equal(t, pathColor, m.At(4, 13))
	assert.Equal(t, color.White, m.At(13, 4))
	// Too close to a wall to be colored.
	assert.Equal(t, color.White, m.At(1, 4))
}

func TestImageIncomplete(t *testing.T) {
	g, e := NewGenerator(3, 3, nil)
	require.NoError(t, e)
	m, e := NewImage(g.Snapshot(), false)
	require.NoError(t, e)
	_, ok := m.EntrancePoint()
	assert.False(t, ok)
	_, e = NewImage(g.Snapshot(), true)
	assert.ErrorIs(t, e, ErrIncomplete)
}

func TestOutwardAngle(t *testing.T) {
	assert.Equal(t, float32(90), OutwardAngle(North))
	assert.Equal(t, float32(0), OutwardAngle(East))
	assert.Equal(t, float32(270), OutwardAngle(South))
	assert.Equal(t, float32(180), OutwardAngle(West))
}
