// Package config loads the settings shared by the maze commands from the
// environment, optionally populated from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yalue/wall_maze"
)

// Environment variable names.
const (
	EnvCellsWide    = "MAZE_CELLS_WIDE"
	EnvCellsHigh    = "MAZE_CELLS_HIGH"
	EnvRandomSeed   = "MAZE_RANDOM_SEED"
	EnvShowSolution = "MAZE_SHOW_SOLUTION"
	EnvOutputFile   = "MAZE_OUTPUT_FILE"
	EnvWallSpacing  = "MAZE_WALL_SPACING"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
)

// Config holds the settings for generating and drawing a maze.
type Config struct {
	CellsWide    int          // Width of the maze, in cells
	CellsHigh    int          // Height of the maze, in cells
	RandomSeed   int64        // Seed for the generator; not positive means use the time
	ShowSolution bool         // Whether to highlight the path through the maze
	OutputFile   string       // Where to write the picture
	WallSpacing  float64      // Distance between adjacent walls, for plan drawings
	LogLevel     logrus.Level // Minimum level of log messages to print
}

// Returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		CellsWide:    20,
		CellsHigh:    20,
		RandomSeed:   -1,
		ShowSolution: false,
		OutputFile:   "",
		WallSpacing:  0.5,
		LogLevel:     logrus.InfoLevel,
	}
}

// Loads the given .env files, if they exist, then reads the configuration from
// the environment. With no file names, ".env" in the working directory is
// tried. Variables that are already set take precedence over the files.
func Load(filenames ...string) (Config, error) {
	if e := godotenv.Load(filenames...); e != nil {
		if !errors.Is(e, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("Error loading .env file: %w", e)
		}
	}
	return FromEnv(os.LookupEnv)
}

// Reads the configuration using the given lookup function, which has the same
// signature as os.LookupEnv. Unset variables keep their default values.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	toReturn := Default()
	var e error
	if toReturn.CellsWide, e = getInt(lookup, EnvCellsWide,
		toReturn.CellsWide); e != nil {
		return Config{}, e
	}
	if toReturn.CellsHigh, e = getInt(lookup, EnvCellsHigh,
		toReturn.CellsHigh); e != nil {
		return Config{}, e
	}
	if v, ok := lookup(EnvRandomSeed); ok {
		toReturn.RandomSeed, e = strconv.ParseInt(v, 10, 64)
		if e != nil {
			return Config{}, fmt.Errorf("%s must be an integer: %w",
				EnvRandomSeed, e)
		}
	}
	if v, ok := lookup(EnvShowSolution); ok {
		toReturn.ShowSolution, e = strconv.ParseBool(v)
		if e != nil {
			return Config{}, fmt.Errorf("%s must be a boolean: %w",
				EnvShowSolution, e)
		}
	}
	if v, ok := lookup(EnvOutputFile); ok {
		toReturn.OutputFile = v
	}
	if v, ok := lookup(EnvWallSpacing); ok {
		toReturn.WallSpacing, e = strconv.ParseFloat(v, 64)
		if e != nil {
			return Config{}, fmt.Errorf("%s must be a number: %w",
				EnvWallSpacing, e)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		toReturn.LogLevel, e = logrus.ParseLevel(v)
		if e != nil {
			return Config{}, fmt.Errorf("%s is invalid: %w", EnvLogLevel, e)
		}
	}
	return toReturn, nil
}

func getInt(lookup func(string) (string, bool), key string,
	defaultValue int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return defaultValue, nil
	}
	toReturn, e := strconv.Atoi(v)
	if e != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, e)
	}
	return toReturn, nil
}

// Checks the configuration before anything is generated or drawn.
func (c *Config) Validate() error {
	if (c.CellsWide < 2) || (c.CellsHigh < 2) {
		return fmt.Errorf("%w: %dx%d, both must be at least 2",
			wall_maze.ErrInvalidDimensions, c.CellsWide, c.CellsHigh)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("no output file was given")
	}
	if c.WallSpacing <= 0 {
		return fmt.Errorf("wall spacing must be positive, got %f",
			c.WallSpacing)
	}
	return nil
}

// Returns a new logger writing text to stderr at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	toReturn := logrus.New()
	toReturn.SetOutput(os.Stderr)
	toReturn.SetLevel(c.LogLevel)
	return toReturn
}
