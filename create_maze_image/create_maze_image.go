// This defines a basic executable for generating an image of a maze.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	"github.com/yalue/wall_maze"
	"github.com/yalue/wall_maze/config"
)

const arrowLength = 16

// Returns 0 = left, 1 = up, 2 = right, and 3 = down. The given angle must be
// between 0 and 360, if it isn't this will simply return 2.
func angleToArrowDir(angle float32) int {
	if (angle > 45) && (angle <= 135) {
		return 1
	} else if (angle > 135) && (angle <= 225) {
		return 0
	} else if (angle > 225) && (angle < 315) {
		return 3
	}
	return 2
}

func getArrowForAngle(angle float32, arrowColor color.Color) image.Image {
	switch angleToArrowDir(angle) {
	case 0:
		return image_utils.LeftArrow(arrowColor)
	case 1:
		return image_utils.UpArrow(arrowColor)
	case 3:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the direction of the given angle, or at least
// as close to it as we can get. The given angle must be between 0 and 360
// (inclusive).
func getOutlinedArrow(angle float32, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForAngle(angle, arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForAngle(angle, color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, angle float32, away bool) image.Point {
	halfLength := arrowLength / 2
	switch angleToArrowDir(angle) {
	case 0:
		// Pointing left
		if away {
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case 1:
		// Pointing up
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case 3:
		// Pointing down
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	// Pointing right
	if away {
		return image.Pt(pt.X+1, pt.Y-halfLength)
	}
	return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
}

// Returns the angle of an arrow pointing into the maze through the side.
func inwardAngle(side wall_maze.Side) float32 {
	angle := wall_maze.OutwardAngle(side) + 180
	if angle >= 360 {
		angle -= 360
	}
	return angle
}

// Adds "decorations" to the maze, including start and end arrows. Rasterizes
// the maze to an image.RGBA.
func drawMazeDecorations(l *wall_maze.Layout, m *wall_maze.Image) (*image.RGBA,
	error) {
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(image_utils.ToRGBA(m), image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}

	// The start arrow points into the maze, with its tip at the entrance.
	startPoint, ok := m.EntrancePoint()
	if !ok {
		return nil, wall_maze.ErrIncomplete
	}
	startAngle := inwardAngle(l.Entrance.Side)
	e = decorated.AddImage(getOutlinedArrow(startAngle, greenColor),
		getArrowTopLeft(startPoint, startAngle, false))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}

	// The end arrow points out of the maze, with its tail at the exit.
	endPoint, ok := m.ExitPoint()
	if !ok {
		return nil, wall_maze.ErrIncomplete
	}
	endAngle := wall_maze.OutwardAngle(l.Exit.Side)
	e = decorated.AddImage(getOutlinedArrow(endAngle, blueColor),
		getArrowTopLeft(endPoint, endAngle, true))
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}
	return image_utils.ToRGBA(decorated), nil
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
	flag.BoolVar(&cfg.ShowSolution, "show_solution", cfg.ShowSolution,
		"If set, shows the solution of the maze.")
	flag.StringVar(&cfg.OutputFile, "output_file", cfg.OutputFile,
		"The name of the .png file to which the maze will be saved.")
	printASCII := flag.Bool("print_ascii", false,
		"If set, also prints the maze to stdout as text.")
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
	if *printASCII {
		fmt.Print(l.String())
	}
	if cfg.ShowSolution {
		log.Info("Finding solution to the maze.")
	}
	m, e := wall_maze.NewImage(l, cfg.ShowSolution)
	if e != nil {
		log.WithError(e).Error("Error preparing maze image")
		return 1
	}
	finalPic, e := drawMazeDecorations(l, m)
	if e != nil {
		log.WithError(e).Error("Error adding maze decorations")
		return 1
	}
	f, e := os.Create(cfg.OutputFile)
	if e != nil {
		log.WithError(e).WithField("file", cfg.OutputFile).Error(
			"Error creating output file")
		return 1
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		log.WithError(e).WithField("file", cfg.OutputFile).Error(
			"Error writing image")
		return 1
	}
	log.WithFields(logrus.Fields{
		"file":     cfg.OutputFile,
		"entrance": l.Entrance.Cell,
		"exit":     l.Exit.Cell,
	}).Info("Image written OK.")
	return 0
}

func main() {
	os.Exit(run())
}
