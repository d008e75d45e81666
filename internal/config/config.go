// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze game.
package config

import "time"

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Grid       MazeGrid         `yaml:"grid"`
	Reveal     MazeReveal       `yaml:"reveal"`
	Start      MazeStart        `yaml:"start"`
	Scoring    MazeScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeGrid defines the maze dimensions in cells. Both must be odd and >= 3.
type MazeGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// FitScreen shrinks the grid to the terminal when it does not fit.
	FitScreen bool `yaml:"fit_screen"`
}

// MazeReveal controls the carving animation.
type MazeReveal struct {
	IntervalMS int `yaml:"interval_ms"` // Minimum time between reveal steps
}

// Interval returns the reveal interval as a duration.
func (r MazeReveal) Interval() time.Duration {
	return time.Duration(r.IntervalMS) * time.Millisecond
}

// MazeStart is the player's spawn cell.
type MazeStart struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// MazeScoring defines how a completed run is scored.
type MazeScoring struct {
	PointsPerRoom int `yaml:"points_per_room"`
	MovePenalty   int `yaml:"move_penalty"`
	MinScore      int `yaml:"min_score"`
}

// DifficultyConfig records which preset produced the current values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyHuge   DifficultyPreset = "huge"
)

// Presets lists the known presets from smallest to largest maze.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyHuge}
