package config

import (
	"fmt"
	"strings"
)

// presetValues holds the grid and pacing for one preset.
type presetValues struct {
	rows, cols int
	intervalMS int
}

var presetTable = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {rows: 11, cols: 21, intervalMS: 25},
	DifficultyNormal: {rows: 21, cols: 41, intervalMS: 10},
	DifficultyHard:   {rows: 31, cols: 61, intervalMS: 5},
	DifficultyHuge:   {rows: 51, cols: 101, intervalMS: 1},
}

// ParsePreset converts a user-supplied name to a preset. Empty input
// yields "" with no error so callers can keep the loaded config.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	p := DifficultyPreset(name)
	if _, ok := presetTable[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or huge)", name)
	}
	return p, nil
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config unchanged.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	v, ok := presetTable[preset]
	if !ok {
		return
	}
	cfg.Grid.Rows = v.rows
	cfg.Grid.Cols = v.cols
	cfg.Reveal.IntervalMS = v.intervalMS
	cfg.Difficulty.Preset = preset
}
