package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid maze config")

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("maze.yaml"), filepath.Join("configs", "maze.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := DefaultMazeConfig()
		if err := yaml.Unmarshal(data, &loaded); err == nil && loaded.Validate() == nil {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &embedded); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// Validate checks the dimensions, interval and start cell.
func (c MazeConfig) Validate() error {
	g := c.Grid
	if g.Rows < 3 || g.Cols < 3 || g.Rows%2 == 0 || g.Cols%2 == 0 {
		return fmt.Errorf("%w: grid %dx%d must be odd and at least 3x3", ErrInvalid, g.Rows, g.Cols)
	}
	if c.Reveal.IntervalMS < 0 {
		return fmt.Errorf("%w: reveal.interval_ms %d is negative", ErrInvalid, c.Reveal.IntervalMS)
	}
	s := c.Start
	if s.Row < 1 || s.Col < 1 || s.Row > g.Rows-2 || s.Col > g.Cols-2 || s.Row%2 == 0 || s.Col%2 == 0 {
		return fmt.Errorf("%w: start (%d,%d) must be an odd interior cell", ErrInvalid, s.Row, s.Col)
	}
	return nil
}

// FitToScreen shrinks the grid so that it fits in w×h terminal cells, given
// that each maze cell is cellW characters wide and hudH rows are reserved.
// It returns false when even a 3x3 maze does not fit.
func (c *MazeConfig) FitToScreen(w, h, cellW, hudH int) bool {
	if cellW < 1 {
		cellW = 1
	}
	maxRows := core.LargestOdd(h - hudH)
	maxCols := core.LargestOdd(w / cellW)
	if maxRows < 3 || maxCols < 3 {
		return false
	}
	if c.Grid.Rows > maxRows {
		c.Grid.Rows = maxRows
	}
	if c.Grid.Cols > maxCols {
		c.Grid.Cols = maxCols
	}
	// Keep the start inside the shrunk grid.
	if c.Start.Row > c.Grid.Rows-2 || c.Start.Col > c.Grid.Cols-2 {
		c.Start = MazeStart{Row: 1, Col: 1}
	}
	return true
}
