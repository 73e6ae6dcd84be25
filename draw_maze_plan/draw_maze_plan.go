// This defines an executable that draws a top-down plan of a maze's walls,
// using the same centered coordinate system a 3D renderer would use for the
// wall endpoints.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
	"github.com/yalue/wall_maze"
	"github.com/yalue/wall_maze/config"
)

// The number of output pixels per unit of maze coordinates.
const pixelsPerUnit = 40.0

// Holds what's needed to map maze coordinates to pixels.
type planDrawer struct {
	layout  *wall_maze.Layout
	spacing float64
	scale   float64
	// The pixel position of the maze's origin, which is its center.
	centerX float64
	centerY float64
	dc      *gg.Context
}

// Returns a drawer with a canvas big enough for the whole maze plus a margin
// of one cell on each side.
func newPlanDrawer(l *wall_maze.Layout, spacing float64) *planDrawer {
	scale := pixelsPerUnit
	width := (float64(l.Width) + 2) * spacing * scale
	height := (float64(l.Height) + 2) * spacing * scale
	return &planDrawer{
		layout:  l,
		spacing: spacing,
		scale:   scale,
		centerX: width / 2,
		centerY: height / 2,
		dc:      gg.NewContext(int(width), int(height)),
	}
}

// Converts a vertex index to a pixel position on the canvas.
func (d *planDrawer) vertexPixel(vertex int) (float64, float64) {
	p := d.layout.VertexPoint(vertex, d.spacing)
	return d.centerX + p.X*d.scale, d.centerY + p.Y*d.scale
}

// Strokes every wall in the list that's still standing.
func (d *planDrawer) strokeWalls(walls []wall_maze.Wall) error {
	for i := range walls {
		w := &(walls[i])
		if w.Open {
			continue
		}
		x1, y1 := d.vertexPixel(w.Vertex1)
		x2, y2 := d.vertexPixel(w.Vertex2)
		d.dc.DrawLine(x1, y1, x2, y2)
	}
	return d.dc.Stroke()
}

// Marks an opening with a filled circle just outside the maze.
func (d *planDrawer) markOpening(o *wall_maze.Opening) error {
	w := &(d.layout.PerimeterWalls[o.Wall])
	x1, y1 := d.vertexPixel(w.Vertex1)
	x2, y2 := d.vertexPixel(w.Vertex2)
	x := (x1 + x2) / 2
	y := (y1 + y2) / 2
	offset := d.spacing * d.scale / 2
	switch o.Side {
	case wall_maze.North:
		y -= offset
	case wall_maze.South:
		y += offset
	case wall_maze.West:
		x -= offset
	case wall_maze.East:
		x += offset
	}
	d.dc.DrawCircle(x, y, offset/3)
	return d.dc.Fill()
}

// Draws the maze's walls, a floor, and markers for the entrance and exit.
func (d *planDrawer) draw() error {
	d.dc.ClearWithColor(gg.RGB(0, 0, 0))

	// The floor, covering every cell.
	x, y := d.vertexPixel(0)
	d.dc.SetRGB(0.85, 0.85, 0.85)
	d.dc.DrawRectangle(x, y, float64(d.layout.Width)*d.spacing*d.scale,
		float64(d.layout.Height)*d.spacing*d.scale)
	e := d.dc.Fill()
	if e != nil {
		return fmt.Errorf("Error drawing floor: %w", e)
	}

	d.dc.SetRGB(1, 0, 0)
	d.dc.SetLineWidth(0.1 * d.spacing * d.scale)
	d.dc.SetLineCap(gg.LineCapSquare)
	e = d.strokeWalls(d.layout.InteriorWalls)
	if e != nil {
		return fmt.Errorf("Error drawing interior walls: %w", e)
	}
	e = d.strokeWalls(d.layout.PerimeterWalls)
	if e != nil {
		return fmt.Errorf("Error drawing perimeter walls: %w", e)
	}

	if (d.layout.Entrance == nil) || (d.layout.Exit == nil) {
		return wall_maze.ErrIncomplete
	}
	d.dc.SetRGB(0.2, 0.8, 0.3)
	e = d.markOpening(d.layout.Entrance)
	if e != nil {
		return fmt.Errorf("Error marking entrance: %w", e)
	}
	d.dc.SetRGB(0.4, 0.5, 1)
	e = d.markOpening(d.layout.Exit)
	if e != nil {
		return fmt.Errorf("Error marking exit: %w", e)
	}
	return nil
}

func run() int {
	cfg, e := config.Load()
	if e != nil {
		fmt.Printf("Error loading configuration: %s\n", e)
		return 1
	}
	flag.IntVar(&cfg.CellsWide, "cells_wide", cfg.CellsWide,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cfg.CellsHigh, "cells_high", cfg.CellsHigh,
		"The height of the maze, in grid cells.")
	flag.Int64Var(&cfg.RandomSeed, "random_seed", cfg.RandomSeed,
		"If positive, specifies the random seed to use.")
	flag.Float64Var(&cfg.WallSpacing, "wall_spacing", cfg.WallSpacing,
		"The distance between adjacent walls, in maze units.")
	flag.StringVar(&cfg.OutputFile, "output_file", cfg.OutputFile,
		"The name of the .png file to which the plan will be saved.")
	flag.Parse()
	log := cfg.NewLogger()
	if e = cfg.Validate(); e != nil {
		log.WithError(e).Error("Invalid or missing argument. Run with -help " +
			"for more information.")
		return 1
	}

	l, e := wall_maze.NewMazeWithSeed(cfg.CellsWide, cfg.CellsHigh,
		cfg.RandomSeed, log)
	if e != nil {
		log.WithError(e).Error("Failed generating maze")
		return 1
	}
	log.Infof("Generated %s OK.", l.Info())

	d := newPlanDrawer(l, cfg.WallSpacing)
	defer d.dc.Close()
	e = d.draw()
	if e != nil {
		log.WithError(e).Error("Error drawing maze plan")
		return 1
	}
	e = d.dc.SavePNG(cfg.OutputFile)
	if e != nil {
		log.WithError(e).WithField("file", cfg.OutputFile).Error(
			"Error writing plan")
		return 1
	}
	log.WithFields(logrus.Fields{
		"file":    cfg.OutputFile,
		"spacing": cfg.WallSpacing,
	}).Info("Plan written OK.")
	return 0
}

func main() {
	os.Exit(run())
}
