package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: MazeGrid{
			Rows:      21,
			Cols:      41,
			FitScreen: true,
		},
		Reveal: MazeReveal{
			IntervalMS: 10,
		},
		Start: MazeStart{
			Row: 1,
			Col: 1,
		},
		Scoring: MazeScoring{
			PointsPerRoom: 10,
			MovePenalty:   1,
			MinScore:      1,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
