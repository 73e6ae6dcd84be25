// This defines a library for generating perfect mazes by randomly knocking
// down walls between cells until every cell is reachable, then opening an
// entrance and an exit in the outer wall. The result is a Layout describing
// every wall segment, which a renderer can draw however it likes.
package wall_maze

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Returned when a maze is requested with fewer than two cells in either
// direction.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Returned by Generate if the generator has already produced its maze.
var ErrAlreadyGenerated = errors.New("maze already generated")

// The source of randomness used for choosing walls. Intn must return a
// uniformly distributed integer in [0, n). *rand.Rand satisfies this.
type RandomSource interface {
	Intn(n int) int
}

// Holds the state of a single maze while it's being generated. Create one
// using NewGenerator. A Generator is not safe for concurrent use, but
// separate Generators are entirely independent.
type Generator struct {
	width          int
	height         int
	interiorWalls  []Wall
	perimeterWalls []Wall
	partition      *Partition
	rng            RandomSource
	log            logrus.FieldLogger
	// The number of interior walls that haven't been drawn yet.
	remainingRemovable int
	// Counters used for logging.
	steps  int
	merges int
	// Index into perimeterWalls, or -1 prior to carving.
	entrance int
	exit     int
	done     bool
	// Set to true once Generate has returned a layout.
	generated bool
	seed      int64
	startTime time.Time
	elapsed   time.Duration
}

// Returns a logger that throws everything away.
func discardLogger() logrus.FieldLogger {
	toReturn := logrus.New()
	toReturn.Out = io.Discard
	return toReturn
}

// Allocates a new width x height maze with every wall present. If rng is nil,
// a math/rand source seeded from the current time is used.
func NewGenerator(width, height int, rng RandomSource) (*Generator, error) {
	if (width < 2) || (height < 2) {
		return nil, fmt.Errorf("%w: %dx%d, both must be at least 2",
			ErrInvalidDimensions, width, height)
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/width != height) {
		return nil, fmt.Errorf("%w: %dx%d is too big", ErrInvalidDimensions,
			width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	interior := newInteriorWalls(width, height)
	toReturn := &Generator{
		width:              width,
		height:             height,
		interiorWalls:      interior,
		perimeterWalls:     newPerimeterWalls(width, height),
		partition:          NewPartition(cellCount),
		rng:                rng,
		log:                discardLogger(),
		remainingRemovable: len(interior),
		entrance:           -1,
		exit:               -1,
	}
	return toReturn, nil
}

// Sets the logger to which generation progress is written at debug level.
func (g *Generator) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	g.log = l
}

// Returns true once the maze is fully connected and the entrance and exit
// have been opened.
func (g *Generator) Done() bool {
	return g.done
}

// Draws one random removable interior wall and knocks it down if the cells on
// either side aren't already connected. Once every cell is connected, this
// opens the entrance and exit and returns true. Calling Step after it has
// returned true does nothing.
func (g *Generator) Step() bool {
	if g.done {
		return true
	}
	if g.steps == 0 {
		g.startTime = time.Now()
	}
	if g.partition.IsFullyConnected() {
		g.finish()
		return true
	}
	if g.remainingRemovable <= 0 {
		panic(fmt.Sprintf("Internal error: ran out of removable walls with "+
			"%d groups remaining in a %dx%d maze", g.partition.Groups(),
			g.width, g.height))
	}
	k := g.rng.Intn(g.remainingRemovable)
	i := kthRemovable(g.interiorWalls, k)
	if i < 0 {
		panic(fmt.Sprintf("Internal error: removable wall %d of %d not found",
			k, g.remainingRemovable))
	}
	w := &(g.interiorWalls[i])
	w.Removable = false
	g.remainingRemovable--
	g.steps++
	// Leave the wall standing if its cells are already connected, since
	// removing it would create a cycle.
	if !g.partition.Union(w.CellA, w.CellB) {
		return false
	}
	w.Open = true
	g.merges++
	if !g.partition.IsFullyConnected() {
		return false
	}
	g.finish()
	return true
}

// Picks a random removable perimeter wall, opens it, and returns its index.
func (g *Generator) carvePerimeter(candidates int) int {
	k := g.rng.Intn(candidates)
	i := kthRemovable(g.perimeterWalls, k)
	if i < 0 {
		panic(fmt.Sprintf("Internal error: perimeter wall %d of %d not found",
			k, candidates))
	}
	w := &(g.perimeterWalls[i])
	w.Removable = false
	w.Open = true
	return i
}

// Opens the entrance and exit, and marks the maze as complete.
func (g *Generator) finish() {
	total := len(g.perimeterWalls)
	g.entrance = g.carvePerimeter(total)
	// The entrance is no longer removable, so it can't be picked again.
	g.exit = g.carvePerimeter(total - 1)
	g.done = true
	g.elapsed = time.Since(g.startTime)
	g.log.WithFields(logrus.Fields{
		"width":         g.width,
		"height":        g.height,
		"steps":         g.steps,
		"merges":        g.merges,
		"unconsidered":  g.remainingRemovable,
		"entrance_cell": g.perimeterWalls[g.entrance].CellA,
		"exit_cell":     g.perimeterWalls[g.exit].CellA,
	}).Debug("Maze generation complete")
}

// Runs the generator to completion and returns the finished layout. Returns
// ErrAlreadyGenerated if called more than once on the same Generator.
func (g *Generator) Generate() (*Layout, error) {
	if g.generated {
		return nil, ErrAlreadyGenerated
	}
	for !g.Step() {
	}
	g.generated = true
	return g.Snapshot(), nil
}

// Returns a copy of the maze's current state. May be called at any point,
// including partway through generation, in which case the entrance and exit
// will be nil.
func (g *Generator) Snapshot() *Layout {
	toReturn := &Layout{
		Width:          g.width,
		Height:         g.height,
		InteriorWalls:  make([]Wall, len(g.interiorWalls)),
		PerimeterWalls: make([]Wall, len(g.perimeterWalls)),
		Seed:           g.seed,
		GenerationTime: g.elapsed,
	}
	copy(toReturn.InteriorWalls, g.interiorWalls)
	copy(toReturn.PerimeterWalls, g.perimeterWalls)
	if g.entrance >= 0 {
		toReturn.Entrance = g.opening(g.entrance)
	}
	if g.exit >= 0 {
		toReturn.Exit = g.opening(g.exit)
	}
	return toReturn
}

func (g *Generator) opening(i int) *Opening {
	w := &(g.perimeterWalls[i])
	return &Opening{
		Wall: i,
		Cell: w.CellA,
		Side: w.Side,
	}
}

// Generates a new, independent width x height maze using the given source of
// randomness. This is what should be called whenever a fresh maze is needed;
// nothing is reused between calls.
func NewMaze(width, height int, rng RandomSource) (*Layout, error) {
	g, e := NewGenerator(width, height, rng)
	if e != nil {
		return nil, e
	}
	return g.Generate()
}

// Generates a maze using a math/rand source with the given seed. If the seed
// is not positive, a new seed will be selected based on the current time in
// nanoseconds. The seed is recorded in the returned layout.
func NewMazeWithSeed(width, height int, seed int64,
	log logrus.FieldLogger) (*Layout, error) {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	g, e := NewGenerator(width, height, rand.New(rand.NewSource(seed)))
	if e != nil {
		return nil, e
	}
	g.seed = seed
	g.SetLogger(log)
	toReturn, e := g.Generate()
	if e != nil {
		return nil, fmt.Errorf("Error generating maze: %w", e)
	}
	return toReturn, nil
}
