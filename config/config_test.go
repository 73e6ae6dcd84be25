package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalue/wall_maze"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(nil))
		assert.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("All values set", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			EnvCellsWide:    "12",
			EnvCellsHigh:    "8",
			EnvRandomSeed:   "1337",
			EnvShowSolution: "true",
			EnvOutputFile:   "out.png",
			EnvWallSpacing:  "0.25",
			EnvLogLevel:     "debug",
		}))
		require.NoError(t, err)
		assert.Equal(t, Config{
			CellsWide:    12,
			CellsHigh:    8,
			RandomSeed:   1337,
			ShowSolution: true,
			OutputFile:   "out.png",
			WallSpacing:  0.25,
			LogLevel:     logrus.DebugLevel,
		}, cfg)
	})

	invalid := map[string]string{
		EnvCellsWide:    "wide",
		EnvCellsHigh:    "1.5",
		EnvRandomSeed:   "seed",
		EnvShowSolution: "maybe",
		EnvWallSpacing:  "far",
		EnvLogLevel:     "loud",
	}
	for key, value := range invalid {
		t.Run("Invalid "+key, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(map[string]string{key: value}))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.OutputFile = "maze.png"
	assert.NoError(t, cfg.Validate())

	narrow := cfg
	narrow.CellsWide = 1
	assert.ErrorIs(t, narrow.Validate(), wall_maze.ErrInvalidDimensions)

	short := cfg
	short.CellsHigh = 0
	assert.ErrorIs(t, short.Validate(), wall_maze.ErrInvalidDimensions)

	noOutput := Default()
	assert.Error(t, noOutput.Validate())

	badSpacing := cfg
	badSpacing.WallSpacing = 0
	assert.Error(t, badSpacing.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("Missing file is not an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.NoError(t, err)
	})

	t.Run("Reads values from file", func(t *testing.T) {
		if _, set := os.LookupEnv(EnvCellsHigh); set {
			t.Skipf("%s is already set in the environment", EnvCellsHigh)
		}
		path := filepath.Join(t.TempDir(), "maze.env")
		require.NoError(t, os.WriteFile(path, []byte(EnvCellsHigh+"=7\n"),
			0o600))
		t.Cleanup(func() { os.Unsetenv(EnvCellsHigh) })
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.CellsHigh)
	})
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = logrus.WarnLevel
	assert.Equal(t, logrus.WarnLevel, cfg.NewLogger().GetLevel())
}
