package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("maze"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("grid:\n  rows: 11\n  cols: 15\nreveal:\n  interval_ms: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Grid.Rows != 11 || cfg.Grid.Cols != 15 {
		t.Errorf("grid = %dx%d, expected 11x15", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Reveal.IntervalMS != 40 {
		t.Errorf("interval = %d, expected 40", cfg.Reveal.IntervalMS)
	}
	// Unset keys keep defaults.
	if cfg.Start.Row != 1 || cfg.Scoring.PointsPerRoom != 10 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMazeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMaze(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("grid: [unclosed"), 0o600)
	if _, err := LoadMaze(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	even := filepath.Join(dir, "even.yaml")
	os.WriteFile(even, []byte("grid:\n  rows: 10\n  cols: 11\n"), 0o600)
	if _, err := LoadMaze(even); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadMaze(even) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
		valid  bool
	}{
		{"defaults", func(*MazeConfig) {}, true},
		{"smallest", func(c *MazeConfig) { c.Grid.Rows, c.Grid.Cols = 3, 3 }, true},
		{"even rows", func(c *MazeConfig) { c.Grid.Rows = 20 }, false},
		{"too small", func(c *MazeConfig) { c.Grid.Cols = 1 }, false},
		{"negative interval", func(c *MazeConfig) { c.Reveal.IntervalMS = -1 }, false},
		{"start on wall", func(c *MazeConfig) { c.Start.Row = 2 }, false},
		{"start on border", func(c *MazeConfig) { c.Start.Col = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyEasy)

	if cfg.Grid.Rows != 11 || cfg.Grid.Cols != 21 {
		t.Errorf("easy grid = %dx%d, expected 11x21", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Difficulty.Preset != DifficultyEasy {
		t.Errorf("preset = %q, expected easy", cfg.Difficulty.Preset)
	}

	for _, p := range Presets {
		c := DefaultMazeConfig()
		ApplyMazePreset(&c, p)
		if err := c.Validate(); err != nil {
			t.Errorf("preset %q produces invalid config: %v", p, err)
		}
	}

	before := cfg
	ApplyMazePreset(&cfg, "nightmare")
	if cfg != before {
		t.Error("unknown preset should not change config")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

func TestFitToScreen(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Start = MazeStart{Row: 19, Col: 39}

	if !cfg.FitToScreen(40, 16, 2, 2) {
		t.Fatal("FitToScreen(40, 16) reported no fit")
	}
	if cfg.Grid.Rows != 13 || cfg.Grid.Cols != 19 {
		t.Errorf("fitted grid = %dx%d, expected 13x19", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Start != (MazeStart{Row: 1, Col: 1}) {
		t.Errorf("start = %+v, expected reset to (1,1)", cfg.Start)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fitted config invalid: %v", err)
	}

	small := DefaultMazeConfig()
	if small.FitToScreen(5, 4, 2, 2) {
		t.Error("FitToScreen(5, 4) should not fit")
	}

	big := DefaultMazeConfig()
	big.FitToScreen(500, 200, 2, 2)
	if big.Grid.Rows != 21 || big.Grid.Cols != 41 {
		t.Errorf("FitToScreen should not grow the grid, got %dx%d", big.Grid.Rows, big.Grid.Cols)
	}
}
