package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalue/wall_maze"
)

func TestPlanDrawer(t *testing.T) {
	l, e := wall_maze.NewMazeWithSeed(6, 4, 5, nil)
	require.NoError(t, e)
	d := newPlanDrawer(l, 0.5)
	defer d.dc.Close()

	assert.Equal(t, 160, d.dc.Width())
	assert.Equal(t, 120, d.dc.Height())
	// The maze is inset by one cell on every side.
	x, y := d.vertexPixel(0)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 20.0, y)
	x, y = d.vertexPixel(l.VertexCount() - 1)
	assert.Equal(t, 140.0, x)
	assert.Equal(t, 100.0, y)

	require.NoError(t, d.draw())
	assert.Equal(t, 160, d.dc.Image().Bounds().Dx())
}

func TestPlanDrawerIncomplete(t *testing.T) {
	g, e := wall_maze.NewGenerator(3, 3, nil)
	require.NoError(t, e)
	d := newPlanDrawer(g.Snapshot(), 1)
	defer d.dc.Close()
	assert.ErrorIs(t, d.draw(), wall_maze.ErrIncomplete)
}
